package cmd

import (
	"context"
	"fmt"
	"strings"
)

// UploadCmd uploads a single file to storage and prints its URL
type UploadCmd struct {
	Path string `arg:"" help:"Local file to upload"`
}

// Run executes the upload command
func (u *UploadCmd) Run(cli *CLI) error {
	if _, err := restoreSession(cli); err != nil {
		return err
	}
	url, err := cli.Container.ProfileService.UploadDocument(context.Background(), u.Path)
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
