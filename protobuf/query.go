package protobuf

import "google.golang.org/protobuf/encoding/protowire"

// PingRequest is the unary ping
type PingRequest struct {
	Count int32
}

// PongResponse echoes the ping count
type PongResponse struct {
	Count int32
}

// GetLatestBlockhashRequest asks for the latest blockhash at a commitment
type GetLatestBlockhashRequest struct {
	Commitment *CommitmentLevel
}

// GetLatestBlockhashResponse carries the latest blockhash
type GetLatestBlockhashResponse struct {
	Slot                 uint64
	Blockhash            string
	LastValidBlockHeight uint64
}

// GetBlockHeightRequest asks for the block height at a commitment
type GetBlockHeightRequest struct {
	Commitment *CommitmentLevel
}

// GetBlockHeightResponse carries the block height
type GetBlockHeightResponse struct {
	BlockHeight uint64
}

// GetSlotRequest asks for the current slot at a commitment
type GetSlotRequest struct {
	Commitment *CommitmentLevel
}

// GetSlotResponse carries the current slot
type GetSlotResponse struct {
	Slot uint64
}

// GetVersionRequest asks for the server version
type GetVersionRequest struct{}

// GetVersionResponse carries the server version as JSON text
type GetVersionResponse struct {
	Version string
}

// IsBlockhashValidRequest checks a blockhash at a commitment
type IsBlockhashValidRequest struct {
	Blockhash  string
	Commitment *CommitmentLevel
}

// IsBlockhashValidResponse reports blockhash validity
type IsBlockhashValidResponse struct {
	Slot  uint64
	Valid bool
}

// SubscribeReplayInfoRequest asks how far back from_slot may reach
type SubscribeReplayInfoRequest struct{}

// SubscribeReplayInfoResponse carries the first slot available for replay, nil when replay is disabled
type SubscribeReplayInfoResponse struct {
	FirstAvailable *uint64
}

func sizeCommitment(num protowire.Number, c *CommitmentLevel) int {
	if c == nil {
		return 0
	}
	return protowire.SizeTag(num) + protowire.SizeVarint(int32Wire(int32(*c)))
}

func appendCommitment(b []byte, num protowire.Number, c *CommitmentLevel) []byte {
	if c == nil {
		return b
	}
	return appendVarintAlways(b, num, int32Wire(int32(*c)))
}

func unmarshalCommitment(fd field) (*CommitmentLevel, error) {
	v, err := fd.int32()
	c := CommitmentLevel(v)
	return &c, err
}

// Size returns the encoded length of m
func (m *PingRequest) Size() int { return sizeVarint(1, int32Wire(m.Count)) }

// MarshalAppend appends the encoding of m to b
func (m *PingRequest) MarshalAppend(b []byte) []byte { return appendVarint(b, 1, int32Wire(m.Count)) }

// Unmarshal decodes b into m
func (m *PingRequest) Unmarshal(b []byte) error {
	*m = PingRequest{}
	return decode("PingRequest", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Count, err = fd.int32()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *PongResponse) Size() int { return sizeVarint(1, int32Wire(m.Count)) }

// MarshalAppend appends the encoding of m to b
func (m *PongResponse) MarshalAppend(b []byte) []byte { return appendVarint(b, 1, int32Wire(m.Count)) }

// Unmarshal decodes b into m
func (m *PongResponse) Unmarshal(b []byte) error {
	*m = PongResponse{}
	return decode("PongResponse", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Count, err = fd.int32()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *GetLatestBlockhashRequest) Size() int { return sizeCommitment(1, m.Commitment) }

// MarshalAppend appends the encoding of m to b
func (m *GetLatestBlockhashRequest) MarshalAppend(b []byte) []byte {
	return appendCommitment(b, 1, m.Commitment)
}

// Unmarshal decodes b into m
func (m *GetLatestBlockhashRequest) Unmarshal(b []byte) error {
	*m = GetLatestBlockhashRequest{}
	return decode("GetLatestBlockhashRequest", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Commitment, err = unmarshalCommitment(fd)
		}
		return
	})
}

// Size returns the encoded length of m
func (m *GetLatestBlockhashResponse) Size() int {
	return sizeVarint(1, m.Slot) + sizeString(2, m.Blockhash) + sizeVarint(3, m.LastValidBlockHeight)
}

// MarshalAppend appends the encoding of m to b
func (m *GetLatestBlockhashResponse) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Slot)
	b = appendString(b, 2, m.Blockhash)
	return appendVarint(b, 3, m.LastValidBlockHeight)
}

// Unmarshal decodes b into m
func (m *GetLatestBlockhashResponse) Unmarshal(b []byte) error {
	*m = GetLatestBlockhashResponse{}
	return decode("GetLatestBlockhashResponse", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Slot, err = fd.uint64()
		case 2:
			m.Blockhash, err = fd.string()
		case 3:
			m.LastValidBlockHeight, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *GetBlockHeightRequest) Size() int { return sizeCommitment(1, m.Commitment) }

// MarshalAppend appends the encoding of m to b
func (m *GetBlockHeightRequest) MarshalAppend(b []byte) []byte {
	return appendCommitment(b, 1, m.Commitment)
}

// Unmarshal decodes b into m
func (m *GetBlockHeightRequest) Unmarshal(b []byte) error {
	*m = GetBlockHeightRequest{}
	return decode("GetBlockHeightRequest", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Commitment, err = unmarshalCommitment(fd)
		}
		return
	})
}

// Size returns the encoded length of m
func (m *GetBlockHeightResponse) Size() int { return sizeVarint(1, m.BlockHeight) }

// MarshalAppend appends the encoding of m to b
func (m *GetBlockHeightResponse) MarshalAppend(b []byte) []byte {
	return appendVarint(b, 1, m.BlockHeight)
}

// Unmarshal decodes b into m
func (m *GetBlockHeightResponse) Unmarshal(b []byte) error {
	*m = GetBlockHeightResponse{}
	return decode("GetBlockHeightResponse", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.BlockHeight, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *GetSlotRequest) Size() int { return sizeCommitment(1, m.Commitment) }

// MarshalAppend appends the encoding of m to b
func (m *GetSlotRequest) MarshalAppend(b []byte) []byte {
	return appendCommitment(b, 1, m.Commitment)
}

// Unmarshal decodes b into m
func (m *GetSlotRequest) Unmarshal(b []byte) error {
	*m = GetSlotRequest{}
	return decode("GetSlotRequest", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Commitment, err = unmarshalCommitment(fd)
		}
		return
	})
}

// Size returns the encoded length of m
func (m *GetSlotResponse) Size() int { return sizeVarint(1, m.Slot) }

// MarshalAppend appends the encoding of m to b
func (m *GetSlotResponse) MarshalAppend(b []byte) []byte { return appendVarint(b, 1, m.Slot) }

// Unmarshal decodes b into m
func (m *GetSlotResponse) Unmarshal(b []byte) error {
	*m = GetSlotResponse{}
	return decode("GetSlotResponse", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Slot, err = fd.uint64()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *GetVersionRequest) Size() int { return 0 }

// MarshalAppend appends the encoding of m to b
func (m *GetVersionRequest) MarshalAppend(b []byte) []byte { return b }

// Unmarshal decodes b into m
func (m *GetVersionRequest) Unmarshal(b []byte) error {
	return decode("GetVersionRequest", b, func(field) error { return nil })
}

// Size returns the encoded length of m
func (m *GetVersionResponse) Size() int { return sizeString(1, m.Version) }

// MarshalAppend appends the encoding of m to b
func (m *GetVersionResponse) MarshalAppend(b []byte) []byte { return appendString(b, 1, m.Version) }

// Unmarshal decodes b into m
func (m *GetVersionResponse) Unmarshal(b []byte) error {
	*m = GetVersionResponse{}
	return decode("GetVersionResponse", b, func(fd field) (err error) {
		if fd.num == 1 {
			m.Version, err = fd.string()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *IsBlockhashValidRequest) Size() int {
	return sizeString(1, m.Blockhash) + sizeCommitment(2, m.Commitment)
}

// MarshalAppend appends the encoding of m to b
func (m *IsBlockhashValidRequest) MarshalAppend(b []byte) []byte {
	b = appendString(b, 1, m.Blockhash)
	return appendCommitment(b, 2, m.Commitment)
}

// Unmarshal decodes b into m
func (m *IsBlockhashValidRequest) Unmarshal(b []byte) error {
	*m = IsBlockhashValidRequest{}
	return decode("IsBlockhashValidRequest", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Blockhash, err = fd.string()
		case 2:
			m.Commitment, err = unmarshalCommitment(fd)
		}
		return
	})
}

// Size returns the encoded length of m
func (m *IsBlockhashValidResponse) Size() int {
	return sizeVarint(1, m.Slot) + sizeBool(2, m.Valid)
}

// MarshalAppend appends the encoding of m to b
func (m *IsBlockhashValidResponse) MarshalAppend(b []byte) []byte {
	b = appendVarint(b, 1, m.Slot)
	return appendBool(b, 2, m.Valid)
}

// Unmarshal decodes b into m
func (m *IsBlockhashValidResponse) Unmarshal(b []byte) error {
	*m = IsBlockhashValidResponse{}
	return decode("IsBlockhashValidResponse", b, func(fd field) (err error) {
		switch fd.num {
		case 1:
			m.Slot, err = fd.uint64()
		case 2:
			m.Valid, err = fd.bool()
		}
		return
	})
}

// Size returns the encoded length of m
func (m *SubscribeReplayInfoRequest) Size() int { return 0 }

// MarshalAppend appends the encoding of m to b
func (m *SubscribeReplayInfoRequest) MarshalAppend(b []byte) []byte { return b }

// Unmarshal decodes b into m
func (m *SubscribeReplayInfoRequest) Unmarshal(b []byte) error {
	return decode("SubscribeReplayInfoRequest", b, func(field) error { return nil })
}

// Size returns the encoded length of m
func (m *SubscribeReplayInfoResponse) Size() int { return sizeOptVarint(1, m.FirstAvailable) }

// MarshalAppend appends the encoding of m to b
func (m *SubscribeReplayInfoResponse) MarshalAppend(b []byte) []byte {
	return appendOptVarint(b, 1, m.FirstAvailable)
}

// Unmarshal decodes b into m
func (m *SubscribeReplayInfoResponse) Unmarshal(b []byte) error {
	*m = SubscribeReplayInfoResponse{}
	return decode("SubscribeReplayInfoResponse", b, func(fd field) error {
		if fd.num == 1 {
			v, err := fd.uint64()
			m.FirstAvailable = &v
			return err
		}
		return nil
	})
}
