// Copyright 2012 Dmitry Chestnykh   (Go scrypt implementation this package grew from)
// Copyright 2009 Colin Percival     (original C implementation)
// Copyright 2014 Jan Varho          (Modular Crypt Format wrapper this package grew from)
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scryptpw implements the scrypt password-based key derivation
// function as defined in Colin Percival's paper "Stronger Key Derivation
// via Sequential Memory-Hard Functions" (RFC 7914), and a Modular Crypt
// Format (MCF) string encoding for storing and verifying scrypt password
// hashes.
//
// Use Derive to get a raw derived key of arbitrary length:
//
//	dk, err := scryptpw.Derive([]byte("some password"), salt, 1<<14, 8, 1, 32)
//
// Use HashPassword and VerifyPassword to store and check passwords as
// self-contained MCF strings:
//
//	mcf, err := scryptpw.HashPassword([]byte("some password"))
//	ok, err := scryptpw.VerifyPassword(mcf, []byte("some password"))
//
// The recommended parameters for interactive logins as of 2009 are
// N=16384, r=8, p=1 (DefaultParams). They should be raised as memory
// latency and CPU parallelism increase, and should be raised further for
// long-term credential storage.
package scryptpw
