// Copyright 2025 Poiesic Systems
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


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/contratoqa/core"
)

// vectorSer serializes embedding vectors as varint-encoded float32 slices.
var vectorSer = ord.NewSliceSer[float32](varint.Float32)

// qaEntrySer is a hand-written MUS serializer for core.QAEntry. Field order
// is part of the on-disk format; InsertedAt is stored as Unix microseconds.
type qaEntrySer struct{}

// QAEntryMUS serializes QAEntry values in MUS format.
var QAEntryMUS = qaEntrySer{}

func (qaEntrySer) Marshal(e core.QAEntry, bs []byte) (n int) {
	n = ord.String.Marshal(e.ID, bs)
	n += ord.String.Marshal(e.Question, bs[n:])
	n += ord.String.Marshal(e.Answer, bs[n:])
	n += ord.String.Marshal(e.Objeto, bs[n:])
	n += ord.String.Marshal(e.Valor, bs[n:])
	n += vectorSer.Marshal(e.Vector, bs[n:])
	n += varint.Int64.Marshal(e.InsertedAt.UnixMicro(), bs[n:])
	return
}

func (qaEntrySer) Unmarshal(bs []byte) (e core.QAEntry, n int, err error) {
	var n1 int
	if e.ID, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if e.Question, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.Answer, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.Objeto, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.Valor, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.Vector, n1, err = vectorSer.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	var us int64
	if us, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	e.InsertedAt = time.UnixMicro(us).UTC()
	return
}

func (qaEntrySer) Size(e core.QAEntry) (size int) {
	size = ord.String.Size(e.ID)
	size += ord.String.Size(e.Question)
	size += ord.String.Size(e.Answer)
	size += ord.String.Size(e.Objeto)
	size += ord.String.Size(e.Valor)
	size += vectorSer.Size(e.Vector)
	size += varint.Int64.Size(e.InsertedAt.UnixMicro())
	return
}

// MarshalQAEntry serializes a QAEntry to bytes.
func MarshalQAEntry(entry *core.QAEntry) []byte {
	buf := make([]byte, QAEntryMUS.Size(*entry))
	QAEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalQAEntry deserializes a QAEntry from bytes.
func UnmarshalQAEntry(data []byte) (*core.QAEntry, error) {
	entry, _, err := QAEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}
