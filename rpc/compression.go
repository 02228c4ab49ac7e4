package rpc

import (
	"bytes"
	"fmt"
	"io"

	geyserclient "github.com/bloXroute-Labs/geyser-client"
	"github.com/klauspost/compress/zstd"
	"google.golang.org/grpc/encoding"
	_ "google.golang.org/grpc/encoding/gzip" // registers the gzip compressor
)

// ZstdName is the grpc-encoding value of the zstd compressor
const ZstdName = "zstd"

// zstdEncoder and zstdDecoder are safe for concurrent use and shared by every stream
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("rpc: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(geyserclient.MaxDecodingMessageSize)))
	if err != nil {
		panic("rpc: zstd decoder initialization failed: " + err.Error())
	}

	encoding.RegisterCompressor(zstdCompressor{})
}

type zstdCompressor struct{}

func (zstdCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return &zstdWriter{w: w}, nil
}

func (zstdCompressor) Decompress(r io.Reader) (io.Reader, error) {
	compressed, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return bytes.NewReader(data), nil
}

func (zstdCompressor) Name() string {
	return ZstdName
}

// zstdWriter collects one message and compresses it as a single frame on Close
type zstdWriter struct {
	w   io.Writer
	buf []byte
}

func (zw *zstdWriter) Write(p []byte) (int, error) {
	zw.buf = append(zw.buf, p...)
	return len(p), nil
}

func (zw *zstdWriter) Close() error {
	_, err := zw.w.Write(zstdEncoder.EncodeAll(zw.buf, nil))
	zw.buf = nil
	return err
}
