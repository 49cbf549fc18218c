// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package driver

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avltree/avl"
)

// YAMLStage - one YAML document per stage
type YAMLStage struct {
	Stage string `yaml:"stage"`
	Order string `yaml:"order"`
	Count int    `yaml:"count"`
	Keys  []int  `yaml:"keys,flow"`
}

// YAMLSink - writes a stream of YAML documents
type YAMLSink struct {
	encoder *yaml.Encoder
}

// NewYAMLSink - create a sink writing to w; Close must be called to
// terminate the stream
func NewYAMLSink(w io.Writer) *YAMLSink {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	return &YAMLSink{
		encoder: encoder,
	}
}

// Write - output the keys of one stage as a document
func (s *YAMLSink) Write(stage string, order avl.Order, keys []int) error {
	if nil == keys {
		keys = []int{}
	}
	return s.encoder.Encode(YAMLStage{
		Stage: stage,
		Order: order.String(),
		Count: len(keys),
		Keys:  keys,
	})
}

// Close - flush the encoder
func (s *YAMLSink) Close() error {
	return s.encoder.Close()
}
