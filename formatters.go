package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cli/go-gh/pkg/tableprinter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Formatter defines the interface for different output formats.
type Formatter interface {
	Format(w io.Writer, result ListResult) error
}

// TabularFormatter prints the profile line then one row per repository.
type TabularFormatter struct {
	IsTTY bool
	Width int
}

// JSONFormatter prints the view as indented JSON.
type JSONFormatter struct{}

// YAMLFormatter prints the view as YAML.
type YAMLFormatter struct{}

// QuietFormatter prints repository URLs only.
type QuietFormatter struct{}

// Format prints nothing at all for an empty list.
func (f *TabularFormatter) Format(w io.Writer, result ListResult) error {
	view := result.View
	if view.Profile == nil {
		return nil
	}

	fmt.Fprintf(w, "%s  %s\n", view.Profile.Login, view.Profile.HTMLURL)
	fmt.Fprintf(w, "avatar: %s\n\n", view.Profile.AvatarURL)

	tp := tableprinter.New(w, f.IsTTY, f.Width)
	for _, repo := range view.Repositories {
		tp.AddField(repo.Name)
		tp.AddField(repo.HTMLURL)
		tp.EndRow()
	}

	return tp.Render()
}

func (f *JSONFormatter) Format(w io.Writer, result ListResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result.View)
}

func (f *YAMLFormatter) Format(w io.Writer, result ListResult) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(result.View); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	return enc.Close()
}

func (f *QuietFormatter) Format(w io.Writer, result ListResult) error {
	for _, repo := range result.View.Repositories {
		fmt.Fprintln(w, repo.HTMLURL)
	}
	return nil
}
