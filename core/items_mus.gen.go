// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice15m74qgYo4wmU0pl8OKGiQΞΞ = ord.NewSliceSer[string](ord.String)
	sliceCnMkStk9wbv5RCch2c8RxQΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ItemTypeMUS = itemTypeMUS{}

type itemTypeMUS struct{}

func (s itemTypeMUS) Marshal(v ItemType, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s itemTypeMUS) Unmarshal(bs []byte) (v ItemType, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ItemType(tmp)
	return
}

func (s itemTypeMUS) Size(v ItemType) (size int) {
	return varint.Int.Size(int(v))
}

func (s itemTypeMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var ProcessingStatusMUS = processingStatusMUS{}

type processingStatusMUS struct{}

func (s processingStatusMUS) Marshal(v ProcessingStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s processingStatusMUS) Unmarshal(bs []byte) (v ProcessingStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ProcessingStatus(tmp)
	return
}

func (s processingStatusMUS) Size(v ProcessingStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s processingStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var SiteMetadataMUS = siteMetadataMUS{}

type siteMetadataMUS struct{}

func (s siteMetadataMUS) Marshal(v SiteMetadata, bs []byte) (n int) {
	n = ord.String.Marshal(v.Description, bs)
	return n + ord.String.Marshal(v.Domain, bs[n:])
}

func (s siteMetadataMUS) Unmarshal(bs []byte) (v SiteMetadata, n int, err error) {
	v.Description, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Domain, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s siteMetadataMUS) Size(v SiteMetadata) (size int) {
	size = ord.String.Size(v.Description)
	return size + ord.String.Size(v.Domain)
}

func (s siteMetadataMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}

var ItemMUS = itemMUS{}

type itemMUS struct{}

func (s itemMUS) Marshal(v Item, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.OwnerId, bs[n:])
	n += ItemTypeMUS.Marshal(v.Type, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Content, bs[n:])
	n += ord.String.Marshal(v.Link, bs[n:])
	n += slice15m74qgYo4wmU0pl8OKGiQΞΞ.Marshal(v.Tags, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += slice15m74qgYo4wmU0pl8OKGiQΞΞ.Marshal(v.Keywords, bs[n:])
	n += sliceCnMkStk9wbv5RCch2c8RxQΞΞ.Marshal(v.Embedding, bs[n:])
	n += SiteMetadataMUS.Marshal(v.Site, bs[n:])
	n += ProcessingStatusMUS.Marshal(v.Status, bs[n:])
	n += ord.String.Marshal(v.StatusError, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.CreatedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s itemMUS) Unmarshal(bs []byte) (v Item, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.OwnerId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Type, n1, err = ItemTypeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Link, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Tags, n1, err = slice15m74qgYo4wmU0pl8OKGiQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = slice15m74qgYo4wmU0pl8OKGiQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Embedding, n1, err = sliceCnMkStk9wbv5RCch2c8RxQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Site, n1, err = SiteMetadataMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = ProcessingStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.StatusError, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s itemMUS) Size(v Item) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.OwnerId)
	size += ItemTypeMUS.Size(v.Type)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Content)
	size += ord.String.Size(v.Link)
	size += slice15m74qgYo4wmU0pl8OKGiQΞΞ.Size(v.Tags)
	size += ord.String.Size(v.Summary)
	size += slice15m74qgYo4wmU0pl8OKGiQΞΞ.Size(v.Keywords)
	size += sliceCnMkStk9wbv5RCch2c8RxQΞΞ.Size(v.Embedding)
	size += SiteMetadataMUS.Size(v.Site)
	size += ProcessingStatusMUS.Size(v.Status)
	size += ord.String.Size(v.StatusError)
	size += raw.TimeUnixMicro.Size(v.CreatedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s itemMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ItemTypeMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice15m74qgYo4wmU0pl8OKGiQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice15m74qgYo4wmU0pl8OKGiQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceCnMkStk9wbv5RCch2c8RxQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SiteMetadataMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ProcessingStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
