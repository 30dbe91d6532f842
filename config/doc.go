// Package config provides the descriptor model and a loader for reading
// declarative configuration files from disk.
//
// Configuration is written as brace-delimited blocks in HCL native syntax.
// A typical file may look something like this:
//
//	provider "aws" {
//	  profile = "udacity"
//	  region  = "us-west-2"
//	}
//
//	resource "key_pair" "deploy" {
//	  key_name   = "deploy-key"
//	  public_key = file("./id_rsa.pub")
//	}
//
// The Loader parses every config file under a directory and produces an
// ordered sequence of Descriptors. Parsing is a pure transform: attribute
// values are captured as-is and file() references are recorded without
// touching the filesystem. Resolution of file references happens later,
// during validation.
//
// Descriptors are never mutated after they are built. A new load produces a
// new set; nothing is shared between loads.
package config
