package utils

import (
	"encoding/json"
)

// Remarshal copies input into output through its JSON representation, so
// custom (un)marshalers on both sides apply.
func Remarshal(input any, output any) error {
	b, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, output)
}
