// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package config merges configuration from INI files, YAML documents
// and environment variables and decodes the result into Go structs.
//
// Every Source writes its values into a Store using key chains. For INI
// input the chain is the section name followed by the key, so
//
//	[SERVER]
//	PORT=8080
//
// decodes into
//
//	var cfg struct {
//	    Server struct {
//	        Port int `config:"PORT"`
//	    } `config:"SERVER"`
//	}
//
// Sources passed to Read later in the argument list override earlier ones.
package config
