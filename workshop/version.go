package workshop

import (
	"fmt"

	"github.com/blang/semver"
)

const (
	// ClientName identifies this library in the User-Agent header
	ClientName = "steamworkshop-go"

	// Version is the library release
	Version = "0.4.1"

	// DefaultBaseURL is the well-known Steam Web API host used for direct calls
	DefaultBaseURL = "https://api.steampowered.com"
)

// ClientVersion is Version parsed once at startup; an invalid Version fails init.
var ClientVersion = semver.MustParse(Version)

// UserAgent is attached to every request.
var UserAgent = fmt.Sprintf("%s/v%s", ClientName, ClientVersion)
