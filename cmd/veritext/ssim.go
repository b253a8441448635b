package main

import (
	"encoding/json"
	"fmt"

	"github.com/mstolarz/veritext"
)

// Run executes the ssim command.
func (c *SSIMCmd) Run(deps *Dependencies) error {
	result, err := deps.Comparer.Compare(c.ImageA, c.ImageB)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", veritext.ErrorMessage(err))
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
