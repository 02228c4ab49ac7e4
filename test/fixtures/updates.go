package fixtures

// PongUpdate is a pong update with id 1 as a server encodes it
var PongUpdate =
// filters: "client"
"0a06636c69656e74" +
	// created_at: 1700000000s 123456000ns
	"5a0b0880e2cfaa06108094ef3a" +
	// pong: id 1
	"4a020801"

// PingUpdate is a server ping without created_at
var PingUpdate =
// filters: "client"
"0a06636c69656e74" +
	// ping
	"3200"

// UnknownVariantUpdate carries a variant field number this client does not know
var UnknownVariantUpdate =
// filters: "client"
"0a06636c69656e74" +
	// field 15, empty message
	"7a00"

// PongRequest is the ping-ack a client sends in reply to a server ping
var PongRequest = "4a020801"
