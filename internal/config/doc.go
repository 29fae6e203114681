// Package config loads and models the gitpublish configuration.
//
// Configuration is read from a single file found by a fixed search order
// (explicit --config path, ./gitpublish.toml, ./.gitpublish.yaml,
// ./.gitpublish.jsonc, then the user config directory), with TOML as the
// primary format. YAML and JSONC are decoded as well because editor-managed
// config files in both formats are common; JSONC comments are stripped with
// github.com/tidwall/jsonc before standard JSON parsing.
//
// Every field has a built-in default, so a missing config file is never an
// error. Defaults are plain values threaded into the analyzer and the tag
// formatter — there is no package-level mutable state, which keeps tests
// free of global setup/teardown.
package config
