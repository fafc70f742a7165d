package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Streaming service URL prefix treated as a video source in
	// Metaplex file entries
	VIDEO_STREAM_URL_PREFIX = "https://watch.videodelivery.net/"
)
