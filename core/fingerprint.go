package core

import (
	"fmt"

	"github.com/google/uuid"

	"genpolicy/codec"
)

var fingerprintNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:genpolicy:policy"))

// Fingerprint identifies a policy record by its content: equal records
// always produce the same UUID (version 5) and different records almost
// never collide.
func Fingerprint(policy any) (uuid.UUID, error) {
	data, err := codec.Marshal(policy)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encoding policy: %w", err)
	}
	return uuid.NewSHA1(fingerprintNamespace, data), nil
}
