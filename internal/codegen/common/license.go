package common

import "fmt"

const headerTemplate = `/*
 * Node type stub generated by flowstub %s.
 *
 * Fill in every TODO marker before building. This file is not
 * regenerated automatically: rerunning the generator refuses to
 * overwrite it unless --force is given.
 */

`

// HeaderComment returns the comment block that opens every generated stub.
func HeaderComment() (string, error) {
	version, err := GetVersion()
	if err != nil {
		return "", fmt.Errorf("get version: %w", err)
	}
	return fmt.Sprintf(headerTemplate, version), nil
}
