package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xssnick/tonutils-go/address"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxTargetLength      = 256

	MinTitleLength = 1
)

// Telegram channel handles: letters, digits, underscores, 5-32 chars.
var channelHandleRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{5,32}$`)

func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) < MinTitleLength {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title cannot exceed %d characters", MaxTitleLength)
	}
	return nil
}

func ValidateDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description cannot exceed %d characters", MaxDescriptionLength)
	}
	return nil
}

func ValidateTarget(target string) error {
	if len(target) > MaxTargetLength {
		return fmt.Errorf("target cannot exceed %d characters", MaxTargetLength)
	}
	return nil
}

// ValidateChannelHandle accepts a handle with or without the @ prefix.
func ValidateChannelHandle(handle string) error {
	handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
	if !channelHandleRegex.MatchString(handle) {
		return fmt.Errorf("invalid channel handle: %q", handle)
	}
	return nil
}

// ValidateWalletAddress checks that addr parses as a TON address in any of
// the formats tonutils accepts (raw or user-friendly base64).
func ValidateWalletAddress(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("wallet address cannot be empty")
	}
	if _, err := address.ParseAddr(addr); err != nil {
		return fmt.Errorf("invalid TON wallet address: %w", err)
	}
	return nil
}
