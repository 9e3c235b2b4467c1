// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package expander is a container for the PCA9539 I/O expander driver and
// its tools.
//
// See the pca9539 package for the driver, pinview for a terminal rendering
// of the pins and cmd/pca9539 for a command line tool.
package expander
