package main

import (
	"fmt"

	"github.com/luxfi/vss/pkg/field"
	"github.com/luxfi/vss/pkg/group"
)

func resolveField(name string) (field.Field, error) {
	switch name {
	case "secp256k1":
		return group.Secp256k1ScalarField(), nil
	case "curve25519":
		return field.NewCurve25519Field(), nil
	default:
		return nil, fmt.Errorf("unknown field %q (want secp256k1 or curve25519)", name)
	}
}

func resolveGroup(name string) (group.Group, error) {
	switch name {
	case "secp256k1":
		return group.NewSecp256k1Group(), nil
	default:
		return nil, fmt.Errorf("unknown group %q (want secp256k1)", name)
	}
}
