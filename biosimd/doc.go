// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides table-driven kernels for common operations on
// ASCII nucleotide byte arrays: reverse-complementing and alphabet
// validation.  The functions operate on []byte so that callers holding a
// string can pass a zero-copy view (see base/unsafe).
package biosimd
