// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltree - build an AVL tree from the keys listed in a configuration
// file and print its traversal
//
// The configuration file is Lua and must return a table, see
// avltree.conf.sample.  Commands:
//
//   run      insert then delete the configured keys and print the keys
//            in the configured order (default command)
//   print    as run, then draw the final tree
//   check    as run, validating the tree after every change
//   watch    run again every time the configuration file is saved
//   help     show usage
//   version  show the program version
package main
