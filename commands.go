package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"genpolicy/core"
	"genpolicy/policyfile"
)

// maxConcurrentFiles bounds how many settings files adjust reads at once.
const maxConcurrentFiles = 8

type compileOutput struct {
	Kind        string    `json:"kind"`
	Fingerprint uuid.UUID `json:"fingerprint"`
	Policy      any       `json:"policy"`
	Constraints any       `json:"constraints"`
}

func runCompile(env *environment, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("compile: unexpected argument %q", args[0])
	}

	var policy, constraints any
	switch env.kind {
	case kindPassword:
		p := env.document.Password()
		policy, constraints = p, env.compiler.CompilePassword(p)
	case kindPassphrase:
		p := env.document.Passphrase()
		policy, constraints = p, env.compiler.CompilePassphrase(p)
	}

	fingerprint, err := core.Fingerprint(policy)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	return writeJSON(env, compileOutput{
		Kind:        env.kind,
		Fingerprint: fingerprint,
		Policy:      policy,
		Constraints: constraints,
	})
}

type adjustResult[S any] struct {
	Path     string        `json:"path"`
	Settings S             `json:"settings"`
	Changes  []core.Change `json:"changes,omitempty"`
}

func runAdjust(env *environment, args []string) error {
	if len(args) == 0 {
		return errors.New("adjust: at least one settings file is required")
	}

	ctx := context.Background()
	switch env.kind {
	case kindPassphrase:
		constraints := env.compiler.CompilePassphrase(env.document.Passphrase()).Dynamic()
		results, err := adjustFiles(ctx, env, args, core.DefaultPassphraseSettings(), constraints)
		if err != nil {
			return err
		}
		return writeJSON(env, results)
	default:
		constraints := env.compiler.CompilePassword(env.document.Password()).Dynamic()
		results, err := adjustFiles(ctx, env, args, core.DefaultPasswordSettings(), constraints)
		if err != nil {
			return err
		}
		return writeJSON(env, results)
	}
}

// adjustFiles loads each settings file over base and corrects it. Each
// file is its own current state. Results keep the order of paths.
func adjustFiles[S any](ctx context.Context, env *environment, paths []string, base S, constraints core.DynamicConstraints[S]) ([]adjustResult[S], error) {
	results := make([]adjustResult[S], len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentFiles)
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			settings, err := policyfile.LoadSettings(path, base)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			adjusted := constraints.Calibrate(settings).Adjust(settings)
			changes := core.Changes(settings, adjusted)
			for _, change := range changes {
				env.logger.Warn("setting modified by policy",
					"path", path,
					"field", change.Field,
					"from", change.From,
					"to", change.To,
				)
			}
			results[i] = adjustResult[S]{Path: path, Settings: adjusted, Changes: changes}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("adjust: %w", err)
	}
	return results, nil
}

func runCheck(env *environment, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("check: unexpected argument %q", args[0])
	}

	// Parsing the config already validated it; this catches limits
	// changed after load and policies that compile to unsatisfiable sets.
	if err := env.config.Validate(); err != nil {
		return fmt.Errorf("check: config: %w", err)
	}
	if err := core.ValidatePasswordConstraints(env.compiler.CompilePassword(env.document.Password())); err != nil {
		return fmt.Errorf("check: password: %w", err)
	}
	if err := core.ValidatePassphraseConstraints(env.compiler.CompilePassphrase(env.document.Passphrase())); err != nil {
		return fmt.Errorf("check: passphrase: %w", err)
	}

	env.logger.Info("configuration and policy are consistent", "policies", len(env.document.Policies))
	_, err := fmt.Fprintln(env.stdout, "ok")
	return err
}

func writeJSON(env *environment, v any) error {
	encoder := json.NewEncoder(env.stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
