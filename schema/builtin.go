package schema

import "github.com/declo/declo/config"

// Builtin returns the schema table for the block types the tool understands
// out of the box: terraform settings, provider declarations and a small set
// of resource types.
//
// Callers may extend the table with Merge; the returned schema is a fresh
// value on every call.
func Builtin() Schema {
	return Schema{
		"terraform": {
			Attributes: map[string]Attribute{
				"required_version":   {Kind: config.String},
				"required_providers": {Kind: config.Block},
				"backend":            {Kind: config.Block},
			},
		},
		"provider": {
			Attributes: map[string]Attribute{
				"region":  {Kind: config.String, Required: true},
				"profile": {Kind: config.String},
				"alias":   {Kind: config.String},
				"version": {Kind: config.String},
			},
		},
		"key_pair": {
			Strict: true,
			Attributes: map[string]Attribute{
				"key_name":   {Kind: config.String, Required: true},
				"public_key": {Kind: config.File, Required: true},
				"tags":       {Kind: config.Block},
			},
		},
		"instance": {
			Strict: true,
			Attributes: map[string]Attribute{
				"ami":             {Kind: config.String, Required: true},
				"instance_type":   {Kind: config.String, Required: true},
				"key_name":        {Kind: config.String},
				"security_groups": {Kind: config.List},
				"user_data":       {Kind: config.File},
				"tags":            {Kind: config.Block},
			},
		},
		"s3_bucket": {
			Strict: true,
			Attributes: map[string]Attribute{
				"bucket":        {Kind: config.String, Required: true},
				"acl":           {Kind: config.String},
				"force_destroy": {Kind: config.Bool},
				"tags":          {Kind: config.Block},
			},
		},
	}
}
