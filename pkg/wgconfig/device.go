// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package wgconfig

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.zx2c4.com/wireguard/device"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

// Device is the IPC surface of a userspace WireGuard device.
// *device.Device from wireguard-go satisfies it.
type Device interface {
	IpcSet(uapiConf string) error
	IpcGet() (string, error)
}

var _ Device = (*device.Device)(nil)

// Apply renders cfg and applies it to dev. logger may be nil.
func Apply(dev Device, cfg *Config, logger *slog.Logger) error {
	if cfg == nil {
		return ErrInvalidConfig
	}
	if logger == nil {
		logger = slog.Default()
	}

	uapi, err := cfg.MarshalUAPI()
	if err != nil {
		return err
	}

	logger.Debug("applying device configuration",
		"private_key", cfg.PrivateKey != nil,
		"listen_port", cfg.ListenPort,
		"peers", len(cfg.Peers))

	if err := dev.IpcSet(uapi); err != nil {
		return fmt.Errorf("%w: %w", ErrDevice, err)
	}
	for _, p := range cfg.Peers {
		logger.Debug("peer configured", "public_key", p.PublicKey, "remove", p.Remove)
	}
	return nil
}

// Read fetches and parses the current configuration of dev.
func Read(dev Device) (*Config, error) {
	uapi, err := dev.IpcGet()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDevice, err)
	}
	return ParseUAPI(strings.NewReader(uapi))
}

// NoisePrivateKey converts k to the wireguard-go device representation.
func NoisePrivateKey(k tunnelkey.PrivateKey) device.NoisePrivateKey {
	var out device.NoisePrivateKey
	raw := k.RawValue()
	copy(out[:], raw)
	tunnelkey.WipeBytes(raw)
	return out
}

// NoisePublicKey converts k to the wireguard-go device representation.
func NoisePublicKey(k tunnelkey.PublicKey) device.NoisePublicKey {
	var out device.NoisePublicKey
	copy(out[:], k.RawValue())
	return out
}

// NoisePresharedKey converts k to the wireguard-go device representation.
func NoisePresharedKey(k tunnelkey.PreSharedKey) device.NoisePresharedKey {
	var out device.NoisePresharedKey
	raw := k.RawValue()
	copy(out[:], raw)
	tunnelkey.WipeBytes(raw)
	return out
}

// PublicKeyFromNoise converts a wireguard-go public key to a typed key.
func PublicKeyFromNoise(k device.NoisePublicKey) tunnelkey.PublicKey {
	// k is always KeyLen bytes.
	pub, _ := tunnelkey.NewPublicKey(k[:])
	return pub
}
