// SPDX-License-Identifier: Apache-2.0

package fhevm

import (
	"context"
	"errors"
	"math"
	"sync"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/internal/store"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// Config is the immutable client configuration supplied at construction.
type Config struct {
	// RPCURL is the JSON-RPC endpoint of the target chain, handed to the
	// instance factory as the provider.
	RPCURL string

	ChainID uint64

	// MockChains maps chain ids to local RPC endpoints served by an
	// in-process mock instance (hardhat-style development chains).
	MockChains map[uint64]string

	// Storage is the pluggable signature cache handed through to the
	// decryption layer. The client itself never reads or writes it.
	Storage store.SignatureStore
}

// Events is the optional callback set fired synchronously on every lifecycle
// transition. The caller retains ownership of the callbacks; the client only
// invokes them.
type Events struct {
	OnStatusChange func(Status)
	OnReady        func()
	OnError        func(error)
}

// Client is the FHEVM lifecycle state machine. See the package documentation
// for the full contract.
type Client struct {
	cfg     Config
	events  Events
	factory InstanceFactory
	log     *logger.Logger

	mu     sync.Mutex
	state  ClientState
	cancel context.CancelFunc
	// gen invalidates in-flight initializations: Destroy and Refresh bump it
	// so a late factory result can no longer mutate state.
	gen uint64
}

// NewClient constructs a client in the idle state. The factory is required;
// events callbacks and log may be zero.
func NewClient(cfg Config, factory InstanceFactory, events Events, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		cfg:     cfg,
		events:  events,
		factory: factory,
		log:     log,
		state:   ClientState{Status: StatusIdle},
	}
}

// State returns a snapshot of the current lifecycle state. The returned value
// is a copy; mutating it has no effect on the client.
func (c *Client) State() ClientState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Storage returns the signature cache configured for this client, or nil.
func (c *Client) Storage() store.SignatureStore {
	return c.cfg.Storage
}

// Initialize creates the underlying instance. It is idempotent: while an
// initialization is in flight, or once the client is ready, further calls
// return immediately without creating a second instance.
//
// Cancellation is cooperative: the factory observes a context merged from the
// caller's ctx and the client-owned lifecycle context, so both the caller and
// Destroy/Refresh can abort instance creation.
func (c *Client) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Status == StatusLoading || c.state.Initialized {
		c.mu.Unlock()
		return nil
	}

	c.gen++
	gen := c.gen

	lifecycle, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	// Transition to loading inside the same critical section as the check,
	// so a concurrent Initialize can never pass the no-op guard twice.
	next, effects := transition(c.state, initStarted{})
	c.state = next
	c.mu.Unlock()

	c.runEffects(next, effects)

	runCtx, stop := mergeContexts(lifecycle, ctx)
	defer stop()

	c.log.Debug().Str("provider", c.cfg.RPCURL).Uint64("chain_id", c.cfg.ChainID).Msg("creating fhevm instance")

	inst, err := c.factory.CreateInstance(runCtx, InstanceConfig{
		Provider:   c.cfg.RPCURL,
		ChainID:    c.cfg.ChainID,
		MockChains: c.cfg.MockChains,
	})
	if err != nil {
		wrapped := wrapInitError(err)
		c.applyIfCurrent(gen, initFailed{err: wrapped})
		return wrapped
	}

	if !c.applyIfCurrent(gen, initSucceeded{instance: inst}) {
		// Destroy or Refresh won the race: the instance must not leak into
		// a state that was already reset.
		return newError(CodeAborted, "initialization superseded", nil)
	}

	c.log.Info().Uint64("chain_id", c.cfg.ChainID).Msg("fhevm instance ready")
	return nil
}

// Refresh cancels any in-flight initialization, resets the client to idle and
// initializes again. Exactly one OnReady or OnError fires once the new
// initialization settles.
func (c *Client) Refresh(ctx context.Context) error {
	c.reset()
	return c.Initialize(ctx)
}

// Destroy cancels any in-flight work, releases the instance reference and
// returns the client to idle. It is idempotent.
func (c *Client) Destroy() {
	c.reset()
}

func (c *Client) reset() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.gen++
	c.mu.Unlock()

	c.apply(resetState{})
}

// Encrypt encrypts a single value for the given contract. The client must be
// initialized. The resulting handle and proof are 0x-prefixed hex strings.
func (c *Client) Encrypt(ctx context.Context, req models.EncryptRequest) (models.EncryptedValue, error) {
	inst, err := c.readyInstance()
	if err != nil {
		return models.EncryptedValue{}, err
	}

	if req.ContractAddress == "" {
		return models.EncryptedValue{}, encryptionError("contract address is required", nil)
	}
	if req.Value > math.MaxUint32 {
		return models.EncryptedValue{}, encryptionError("value does not fit in 32 bits", nil)
	}

	builder, err := inst.CreateEncryptedInput(req.ContractAddress, req.UserAddress)
	if err != nil {
		return models.EncryptedValue{}, encryptionError("create encrypted input", err)
	}

	result, err := builder.Add32(uint32(req.Value)).Encrypt(ctx)
	if err != nil {
		return models.EncryptedValue{}, encryptionError("encrypt input", err)
	}

	if len(result.Handles) != 1 {
		return models.EncryptedValue{}, encryptionError("expected exactly one handle from encryption", nil)
	}
	if len(result.InputProof) == 0 {
		return models.EncryptedValue{}, encryptionError("encryption returned no input proof", nil)
	}

	return models.EncryptedValue{
		Handle: hexutil.Encode(result.Handles[0]),
		Proof:  hexutil.Encode(result.InputProof),
	}, nil
}

// Decrypt resolves a handle to its clear value. Exactly one of
// req.UsePublicDecrypt or a structured req.Signature must be supplied.
func (c *Client) Decrypt(ctx context.Context, req models.DecryptRequest) (uint64, error) {
	inst, err := c.readyInstance()
	if err != nil {
		return 0, err
	}

	switch {
	case req.UsePublicDecrypt:
		result, err := inst.PublicDecrypt(ctx, []string{req.Handle})
		if err != nil {
			return 0, decryptionError("public decrypt", err)
		}
		return normalizeClearValue(result, req.Handle)

	case req.Signature != nil:
		if err := validateSignature(req.Signature); err != nil {
			return 0, err
		}

		result, err := inst.UserDecrypt(ctx, UserDecryptRequest{
			Pairs:             []HandleContractPair{{Handle: req.Handle, ContractAddress: req.ContractAddress}},
			PrivateKey:        req.Signature.PrivateKey,
			PublicKey:         req.Signature.PublicKey,
			Signature:         req.Signature.Signature,
			ContractAddresses: req.Signature.ContractAddresses,
			UserAddress:       req.Signature.UserAddress,
			StartTimestamp:    req.Signature.StartTimestamp,
			DurationDays:      req.Signature.DurationDays,
		})
		if err != nil {
			return 0, decryptionError("user decrypt", err)
		}
		return extractKeyedValue(result, req.Handle)

	default:
		return 0, decryptionError("either a decryption signature or usePublicDecrypt is required", nil)
	}
}

// validateSignature rejects credentials missing the fields needed to rebuild
// the user-decrypt request. A bare signature string carries no key material
// and cannot be used.
func validateSignature(sig *models.DecryptionSignature) error {
	if sig.Signature == "" {
		return decryptionError("decryption signature is empty", nil)
	}
	if sig.PrivateKey == "" || sig.PublicKey == "" || sig.UserAddress == "" {
		return decryptionError("plain signature string is insufficient: full credential bundle required", nil)
	}
	return nil
}

func (c *Client) readyInstance() (Instance, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Initialized || c.state.Instance == nil {
		return nil, newError(CodeNotInitialized, "client is not initialized", nil)
	}
	return c.state.Instance, nil
}

// apply runs one state transition and fires the resulting callbacks. The
// mutex is released before callbacks run so they may call back into State().
func (c *Client) apply(ev clientEvent) {
	c.mu.Lock()
	next, effects := transition(c.state, ev)
	c.state = next
	c.mu.Unlock()

	c.runEffects(next, effects)
}

// applyIfCurrent applies ev only if gen still matches, i.e. no Destroy or
// Refresh happened since the caller captured it. Reports whether the event
// was applied.
func (c *Client) applyIfCurrent(gen uint64, ev clientEvent) bool {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return false
	}
	next, effects := transition(c.state, ev)
	c.state = next
	c.mu.Unlock()

	c.runEffects(next, effects)
	return true
}

func (c *Client) runEffects(s ClientState, effects []effect) {
	for _, eff := range effects {
		switch eff {
		case effectStatusChanged:
			if c.events.OnStatusChange != nil {
				c.events.OnStatusChange(s.Status)
			}
		case effectReady:
			if c.events.OnReady != nil {
				c.events.OnReady()
			}
		case effectError:
			if c.events.OnError != nil {
				c.events.OnError(s.Err)
			}
		}
	}
}

func wrapInitError(err error) *ClientError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return newError(CodeAborted, "initialization aborted", err)
	}

	var ce *ClientError
	if errors.As(err, &ce) {
		return ce
	}
	return newError(CodeClientError, "create instance", err)
}

// mergeContexts returns a context canceled as soon as either parent is. The
// returned stop function releases the watcher and must always be called.
func mergeContexts(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(a)
	unregister := context.AfterFunc(b, func() {
		cancel(context.Cause(b))
	})

	return ctx, func() {
		unregister()
		cancel(context.Canceled)
	}
}
