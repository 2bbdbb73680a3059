// Package templates groups the starter templates offered when creating a
// JavaScript SDK (alloy) project.
package templates

import (
	"encoding/json"
	"os"

	"github.com/cloudpebble/cptui/internal/errors"
)

// Group names, in the order the catalog discriminators map to them.
const (
	GroupTutorial   = "watchface-tutorial"
	GroupWatchfaces = "watchfaces"
	GroupApps       = "apps"
	GroupExamples   = "examples"
)

// DefaultID is submitted when the catalog is empty.
const DefaultID = "0"

// Template is one catalog entry.
type Template struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Dir   string `json:"dir,omitempty"`
	Group string `json:"group,omitempty"`
}

// Bucket is a named group of templates.
type Bucket struct {
	Name      string
	Templates []Template
}

// bucketFor maps a template's dir (or group, when dir is empty) to its bucket.
func bucketFor(t Template) string {
	d := t.Dir
	if d == "" {
		d = t.Group
	}
	switch d {
	case "watchface-tutorial/":
		return GroupTutorial
	case "watchfaces/":
		return GroupWatchfaces
	case "apps/":
		return GroupApps
	default:
		return GroupExamples
	}
}

// Group buckets templates, creating buckets in order of first appearance
// and keeping catalog order within each. An empty catalog yields a single
// ungrouped default entry labelled defaultLabel.
func Group(list []Template, defaultLabel string) []Bucket {
	if len(list) == 0 {
		return []Bucket{{Templates: []Template{{ID: DefaultID, Label: defaultLabel}}}}
	}

	var buckets []Bucket
	index := make(map[string]int)
	for _, t := range list {
		name := bucketFor(t)
		i, ok := index[name]
		if !ok {
			i = len(buckets)
			index[name] = i
			buckets = append(buckets, Bucket{Name: name})
		}
		buckets[i].Templates = append(buckets[i].Templates, t)
	}
	return buckets
}

// Option is a flattened, display-ready choice.
type Option struct {
	Label string
	Value string
}

// Flatten turns buckets into a single option list with "group / label" text.
func Flatten(buckets []Bucket) []Option {
	var out []Option
	for _, b := range buckets {
		for _, t := range b.Templates {
			label := t.Label
			if b.Name != "" {
				label = b.Name + " / " + t.Label
			}
			out = append(out, Option{Label: label, Value: t.ID})
		}
	}
	return out
}

// LoadCatalog reads a JSON array of templates. An empty or missing path
// yields an empty catalog.
func LoadCatalog(path string) ([]Template, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.E(errors.Op("templates.LoadCatalog"), errors.KindIO, err)
	}
	var list []Template
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.E(errors.Op("templates.LoadCatalog"), errors.KindInvalid, path, err)
	}
	return list, nil
}

// NativeTemplate is a built-in C project template.
type NativeTemplate struct {
	ID    int
	Label string
}

// NativeTemplates are always offered for native projects. -1 seeds a
// default main.c; 0 creates an empty project.
var NativeTemplates = []NativeTemplate{
	{ID: -1, Label: "Default project"},
	{ID: 0, Label: "Empty project"},
}
