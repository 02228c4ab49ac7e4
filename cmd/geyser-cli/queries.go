package main

import (
	"strconv"

	pb "github.com/bloXroute-Labs/geyser-client/protobuf"
	"github.com/bloXroute-Labs/geyser-client/services/display"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func healthCheckResult(resp *grpc_health_v1.HealthCheckResponse) *display.QueryResult {
	result := display.NewQueryResult()
	result.Set("status", resp.GetStatus().String())
	return result
}

func latestBlockhashResult(resp *pb.GetLatestBlockhashResponse) *display.QueryResult {
	result := display.NewQueryResult()
	result.Set("slot", strconv.FormatUint(resp.Slot, 10))
	result.Set("blockhash", resp.Blockhash)
	result.Set("Last Valid Block Height", strconv.FormatUint(resp.LastValidBlockHeight, 10))
	return result
}

func blockHeightResult(resp *pb.GetBlockHeightResponse) *display.QueryResult {
	result := display.NewQueryResult()
	result.Set("Block Height", strconv.FormatUint(resp.BlockHeight, 10))
	return result
}

func slotResult(resp *pb.GetSlotResponse) *display.QueryResult {
	result := display.NewQueryResult()
	result.Set("slot", strconv.FormatUint(resp.Slot, 10))
	return result
}

func blockhashValidResult(resp *pb.IsBlockhashValidResponse) *display.QueryResult {
	result := display.NewQueryResult()
	result.Set("slot", strconv.FormatUint(resp.Slot, 10))
	result.Set("valid", strconv.FormatBool(resp.Valid))
	return result
}

func versionResult(resp *pb.GetVersionResponse) *display.QueryResult {
	result := display.NewQueryResult()
	result.Set("version", resp.Version)
	return result
}

func pongResult(resp *pb.PongResponse) *display.QueryResult {
	result := display.NewQueryResult()
	result.Set("count", strconv.FormatInt(int64(resp.Count), 10))
	return result
}

func replayInfoResult(resp *pb.SubscribeReplayInfoResponse) *display.QueryResult {
	result := display.NewQueryResult()
	if resp.FirstAvailable == nil {
		result.Set("First Available", "none")
	} else {
		result.Set("First Available", strconv.FormatUint(*resp.FirstAvailable, 10))
	}
	return result
}
