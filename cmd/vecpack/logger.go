// Copyright 2025 go-fixvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// Logger returns the command's logger. It is a no-op logger unless
// configureLogger enabled debug output.
func Logger() *zap.Logger {
	return logger
}

// DebugEnv checks if the VECPACK_DEBUG environment variable is set.
// Any non-empty value enables debug logging unless it parses as a false
// boolean ("0", "false", ...).
func DebugEnv() bool {
	val := os.Getenv("VECPACK_DEBUG")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// configureLogger installs a development logger writing to stderr when
// verbose is set, and a no-op logger otherwise.
func configureLogger(verbose bool) error {
	if !verbose {
		logger = zap.NewNop()
		return nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Named("vecpack")
	return nil
}
