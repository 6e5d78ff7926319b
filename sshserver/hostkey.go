package sshserver

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
)

const hostKeyComment = "coinflip host key"

// HostKey is the identity the server presents to SSH clients.
type HostKey struct {
	Signer      ssh.Signer
	Path        string
	Fingerprint string
	// Generated is true when the key was created by this call.
	Generated bool
}

// LoadOrCreateHostKey reads the ed25519 host key at path. A missing key is
// generated and stored with owner-only permissions.
func LoadOrCreateHostKey(path string) (HostKey, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return HostKey{}, errors.New("ssh host key path is required")
	}
	signer, err := readHostKey(path)
	generated := false
	if errors.Is(err, fs.ErrNotExist) {
		signer, err = createHostKey(path)
		generated = err == nil
		if errors.Is(err, fs.ErrExist) {
			// another process created it first
			signer, err = readHostKey(path)
		}
	}
	if err != nil {
		return HostKey{}, err
	}
	return HostKey{
		Signer:      signer,
		Path:        path,
		Fingerprint: ssh.FingerprintSHA256(signer.PublicKey()),
		Generated:   generated,
	}, nil
}

func readHostKey(path string) (ssh.Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read host key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("parse host key %s: %w", path, err)
	}
	return signer, nil
}

func createHostKey(path string) (ssh.Signer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create host key dir: %w", err)
	}
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	block, err := ssh.MarshalPrivateKey(priv, hostKeyComment)
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("write host key: %w", err)
	}
	if err := pem.Encode(file, block); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return nil, fmt.Errorf("encode host key: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close host key: %w", err)
	}
	return ssh.NewSignerFromKey(priv)
}
