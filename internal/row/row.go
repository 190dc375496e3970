// Package row defines the fixed-width record stored in every leaf cell.
package row

import (
	"encoding/binary"
	"fmt"
)

const (
	IDSize = 4

	// MaxUsernameLen and MaxEmailLen are the bounds on the text a caller may
	// supply; the on-disk fields reserve one extra byte for the NUL terminator.
	MaxUsernameLen = 32
	MaxEmailLen    = 255

	UsernameSize = MaxUsernameLen + 1
	EmailSize    = MaxEmailLen + 1

	IDOffset       = 0
	UsernameOffset = IDOffset + IDSize
	EmailOffset    = UsernameOffset + UsernameSize

	// Size is the packed on-disk width of a row image: id + username + email.
	Size = IDSize + UsernameSize + EmailSize
)

// Row is the single fixed-schema record this table stores.
type Row struct {
	ID       uint32
	Username string
	Email    string
}

// Serialize packs r into dst, which must be exactly Size bytes long.
func Serialize(r Row, dst []byte) error {
	if len(dst) != Size {
		return fmt.Errorf("row.Serialize: dst length %d, want %d", len(dst), Size)
	}
	if len(r.Username) > MaxUsernameLen {
		return fmt.Errorf("row.Serialize: username %d bytes exceeds %d", len(r.Username), MaxUsernameLen)
	}
	if len(r.Email) > MaxEmailLen {
		return fmt.Errorf("row.Serialize: email %d bytes exceeds %d", len(r.Email), MaxEmailLen)
	}

	for i := range dst {
		dst[i] = 0
	}

	binary.LittleEndian.PutUint32(dst[IDOffset:IDOffset+IDSize], r.ID)
	copy(dst[UsernameOffset:UsernameOffset+UsernameSize], r.Username)
	copy(dst[EmailOffset:EmailOffset+EmailSize], r.Email)
	return nil
}

// Deserialize unpacks a row image previously written by Serialize.
func Deserialize(src []byte) (Row, error) {
	if len(src) != Size {
		return Row{}, fmt.Errorf("row.Deserialize: src length %d, want %d", len(src), Size)
	}

	var r Row
	r.ID = binary.LittleEndian.Uint32(src[IDOffset : IDOffset+IDSize])
	r.Username = trimNUL(src[UsernameOffset : UsernameOffset+UsernameSize])
	r.Email = trimNUL(src[EmailOffset : EmailOffset+EmailSize])
	return r, nil
}

func trimNUL(b []byte) string {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return string(b[:n])
}
