// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ulmaulana/FHETalk-sub001/internal/config"
	"github.com/ulmaulana/FHETalk-sub001/internal/contract"
	"github.com/ulmaulana/FHETalk-sub001/internal/crypto"
	"github.com/ulmaulana/FHETalk-sub001/internal/fhevm"
	"github.com/ulmaulana/FHETalk-sub001/internal/logger"
	"github.com/ulmaulana/FHETalk-sub001/internal/relayer"
	"github.com/ulmaulana/FHETalk-sub001/internal/service"
	"github.com/ulmaulana/FHETalk-sub001/internal/store"
	"github.com/ulmaulana/FHETalk-sub001/internal/tui"
	"github.com/ulmaulana/FHETalk-sub001/internal/workers"
	"github.com/ulmaulana/FHETalk-sub001/models"
)

// App is the FHETalk client application: it owns the fhevm client lifecycle,
// the storage and service stack, the background workers and the TUI.
type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	client   *fhevm.Client
	keystore crypto.WalletKeystore
	ui       *tui.TUI
	log      *logger.Logger
}

// NewApp wires everything that does not need an unlocked wallet: storage,
// the relayer-backed fhevm client and the TUI shell.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	factory := relayer.NewFactory(relayer.Config{
		BaseURL: cfg.Relayer.URL,
		Timeout: cfg.Relayer.RequestTimeout,
	}, log)

	fhevmClient := fhevm.NewClient(fhevm.Config{
		RPCURL:     cfg.Chain.RPCURL,
		ChainID:    cfg.Chain.ChainID,
		MockChains: cfg.Chain.MockChains,
		Storage:    storages.Signatures,
	}, factory, fhevm.Events{
		OnStatusChange: func(status fhevm.Status) {
			log.Debug().Str("status", string(status)).Msg("fhevm client status changed")
		},
		OnReady: func() {
			log.Info().Msg("fhevm client ready")
		},
		OnError: func(err error) {
			log.Error().Err(err).Msg("fhevm client initialization failed")
		},
	}, log)

	keystore := crypto.NewFileKeystore(cfg.App.KeystorePath)

	return &App{
		cfg:      cfg,
		storages: storages,
		client:   fhevmClient,
		keystore: keystore,
		ui:       tui.New(keystore, buildInfo.Normalize(), log),
		log:      log,
	}, nil
}

// Run executes the client: unlock the wallet, bring up the chain adapter and
// services, start the background workers and hand control to the chat UI.
// Returns nil when the user quits normally.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialization races the unlock screen; by the time the user typed a
	// password the instance is usually ready.
	go func() {
		if err := a.client.Initialize(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error().Err(err).Msg("fhevm initialization error")
		}
	}()
	defer a.client.Destroy()

	wallet, err := a.ui.UnlockFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("unlock wallet: %w", err)
	}
	a.log.Info().Str("address", wallet.Address()).Msg("wallet unlocked")

	backend, err := contract.Dial(a.cfg.Chain.RPCURL)
	if err != nil {
		return fmt.Errorf("dial chain rpc: %w", err)
	}

	chain, err := contract.NewAdapter(backend, a.cfg.Chain.ContractAddress, a.cfg.Chain.ChainID, wallet, a.log)
	if err != nil {
		return fmt.Errorf("create contract adapter: %w", err)
	}

	signer := crypto.NewEIP712Signer(a.cfg.Chain.ChainID, a.cfg.Chain.ContractAddress)
	decryption := service.NewDecryptionService(
		a.client, signer, wallet, a.storages.Signatures, a.cfg.App.SignatureValidityDays, a.log,
	)
	messaging := service.NewMessagingService(
		a.client, chain, decryption, a.storages.Messages, a.storages.Groups,
		wallet.Address(), a.cfg.Chain.ContractAddress, a.log,
	)

	background := workers.NewWorkers(
		workers.NewMessageSyncWorker(messaging, a.cfg.Workers.SyncInterval, a.log),
		workers.NewSignatureJanitor(decryption, a.cfg.Workers.JanitorInterval, a.log),
	)
	background.Start(ctx)
	defer background.Stop()

	return a.ui.MainLoop(ctx, wallet, messaging, a.client)
}
