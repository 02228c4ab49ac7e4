package main

import (
	"testing"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/services/display"
	"github.com/bloXroute-Labs/geyser-client/utils/ptr"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func pairs(result *display.QueryResult) [][2]string {
	var out [][2]string
	for pair := result.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, [2]string{pair.Key, pair.Value})
	}
	return out
}

func TestQueryResults(t *testing.T) {
	assert.Equal(t, [][2]string{{"status", "NOT_SERVING"}},
		pairs(healthCheckResult(&grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING})))

	assert.Equal(t, [][2]string{{"slot", "5"}, {"blockhash", "abc"}, {"Last Valid Block Height", "155"}},
		pairs(latestBlockhashResult(&pb.GetLatestBlockhashResponse{Slot: 5, Blockhash: "abc", LastValidBlockHeight: 155})))

	assert.Equal(t, [][2]string{{"slot", "9"}, {"valid", "false"}},
		pairs(blockhashValidResult(&pb.IsBlockhashValidResponse{Slot: 9})))

	assert.Equal(t, [][2]string{{"First Available", "none"}},
		pairs(replayInfoResult(&pb.SubscribeReplayInfoResponse{})))
	assert.Equal(t, [][2]string{{"First Available", "12"}},
		pairs(replayInfoResult(&pb.SubscribeReplayInfoResponse{FirstAvailable: ptr.New(uint64(12))})))
}
