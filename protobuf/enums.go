package protobuf

import "fmt"

// CommitmentLevel is the confirmation depth updates are filtered by
type CommitmentLevel int32

// CommitmentLevel values
const (
	CommitmentLevelProcessed CommitmentLevel = 0
	CommitmentLevelConfirmed CommitmentLevel = 1
	CommitmentLevelFinalized CommitmentLevel = 2
)

var commitmentNames = map[CommitmentLevel]string{
	CommitmentLevelProcessed: "processed",
	CommitmentLevelConfirmed: "confirmed",
	CommitmentLevelFinalized: "finalized",
}

func (c CommitmentLevel) String() string {
	if name, ok := commitmentNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CommitmentLevel(%d)", int32(c))
}

// ParseCommitmentLevel converts processed / confirmed / finalized into a CommitmentLevel
func ParseCommitmentLevel(s string) (CommitmentLevel, error) {
	for level, name := range commitmentNames {
		if name == s {
			return level, nil
		}
	}
	return CommitmentLevelProcessed, fmt.Errorf("invalid commitment level %q, expected one of processed, confirmed, finalized", s)
}

// SlotStatus is the lifecycle stage reported by a slot update
type SlotStatus int32

// SlotStatus values
const (
	SlotStatusProcessed SlotStatus = iota
	SlotStatusConfirmed
	SlotStatusFinalized
	SlotStatusFirstShredReceived
	SlotStatusCompleted
	SlotStatusCreatedBank
	SlotStatusDead
)

var slotStatusNames = []string{
	"processed",
	"confirmed",
	"finalized",
	"first_shred_received",
	"completed",
	"created_bank",
	"dead",
}

// Valid reports whether s is a known status
func (s SlotStatus) Valid() bool {
	return s >= 0 && int(s) < len(slotStatusNames)
}

func (s SlotStatus) String() string {
	if s.Valid() {
		return slotStatusNames[s]
	}
	return fmt.Sprintf("SlotStatus(%d)", int32(s))
}

// RewardType classifies a block reward
type RewardType int32

// RewardType values
const (
	RewardTypeUnspecified RewardType = iota
	RewardTypeFee
	RewardTypeRent
	RewardTypeStaking
	RewardTypeVoting
)

var rewardTypeNames = []string{"Unspecified", "Fee", "Rent", "Staking", "Voting"}

func (r RewardType) String() string {
	if r >= 0 && int(r) < len(rewardTypeNames) {
		return rewardTypeNames[r]
	}
	return fmt.Sprintf("RewardType(%d)", int32(r))
}
