package session

import (
	"context"
	"fmt"

	"github.com/evizor/console/internal/cryptox"
	"github.com/evizor/console/internal/devstore"
)

const (
	kvSessionBlob  = "session.blob"
	kvSessionNonce = "session.nonce"
	kvDeviceSecret = "device.secret"
	kvDeviceSalt   = "device.salt"
)

// SealedPersister keeps the remembered session in the device store,
// AES-GCM sealed under an argon2-stretched per-device key.
type SealedPersister struct {
	kv *devstore.KV
}

func NewSealedPersister(kv *devstore.KV) *SealedPersister {
	return &SealedPersister{kv: kv}
}

func (p *SealedPersister) Save(ctx context.Context, blob []byte) error {
	key, err := p.deviceKey(ctx)
	if err != nil {
		return err
	}

	ciphertext, nonce, err := cryptox.Seal(blob, key)
	if err != nil {
		return fmt.Errorf("failed to seal session: %w", err)
	}

	if err := p.kv.Set(ctx, kvSessionBlob, ciphertext); err != nil {
		return err
	}
	return p.kv.Set(ctx, kvSessionNonce, nonce)
}

func (p *SealedPersister) Load(ctx context.Context) ([]byte, error) {
	ciphertext, err := p.kv.Get(ctx, kvSessionBlob)
	if err != nil {
		return nil, err
	}
	if ciphertext == nil {
		return nil, nil
	}

	nonce, err := p.kv.Get(ctx, kvSessionNonce)
	if err != nil {
		return nil, err
	}
	if nonce == nil {
		return nil, nil
	}

	key, err := p.deviceKey(ctx)
	if err != nil {
		return nil, err
	}

	blob, err := cryptox.Open(ciphertext, nonce, key)
	if err != nil {
		// sealed under a key we no longer have; treat as absent
		return nil, nil
	}
	return blob, nil
}

func (p *SealedPersister) Clear(ctx context.Context) error {
	if err := p.kv.Delete(ctx, kvSessionBlob); err != nil {
		return err
	}
	return p.kv.Delete(ctx, kvSessionNonce)
}

// deviceKey returns the device sealing key, generating and storing the
// underlying secret material on first use.
func (p *SealedPersister) deviceKey(ctx context.Context) ([]byte, error) {
	secret, err := p.kv.Get(ctx, kvDeviceSecret)
	if err != nil {
		return nil, err
	}
	salt, err := p.kv.Get(ctx, kvDeviceSalt)
	if err != nil {
		return nil, err
	}

	if secret == nil || salt == nil {
		if secret, err = cryptox.RandBytes(32); err != nil {
			return nil, err
		}
		if salt, err = cryptox.RandBytes(16); err != nil {
			return nil, err
		}
		if err := p.kv.Set(ctx, kvDeviceSecret, secret); err != nil {
			return nil, err
		}
		if err := p.kv.Set(ctx, kvDeviceSalt, salt); err != nil {
			return nil, err
		}
	}

	return cryptox.DeriveDeviceKey(secret, salt), nil
}
