// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ulmaulana/FHETalk-sub001/internal/mock"
)

func TestMessageSyncWorker_SyncsOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessaging := mock.NewMockMessagingService(ctrl)

	synced := make(chan struct{}, 1)
	mockMessaging.EXPECT().SyncAll(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			select {
			case synced <- struct{}{}:
			default:
			}
			return nil
		},
	).MinTimes(1)

	w := NewMessageSyncWorker(mockMessaging, 5*time.Millisecond, nil)
	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-synced:
	case <-time.After(time.Second):
		t.Fatal("sync worker never ticked")
	}
}

func TestMessageSyncWorker_SyncFailureKeepsTicking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessaging := mock.NewMockMessagingService(ctrl)

	calls := make(chan struct{}, 4)
	mockMessaging.EXPECT().SyncAll(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			select {
			case calls <- struct{}{}:
			default:
			}
			return errors.New("chain unreachable")
		},
	).MinTimes(2)

	w := NewMessageSyncWorker(mockMessaging, 5*time.Millisecond, nil)
	w.Start(context.Background())
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("sync worker stopped ticking after a failure")
		}
	}
}

func TestMessageSyncWorker_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := NewMessageSyncWorker(mock.NewMockMessagingService(ctrl), time.Minute, nil)

	// Should not panic or block when the worker never started
	w.Stop()
}

func TestMessageSyncWorker_StopHaltsTicking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessaging := mock.NewMockMessagingService(ctrl)
	mockMessaging.EXPECT().SyncAll(gomock.Any()).Return(nil).AnyTimes()

	w := NewMessageSyncWorker(mockMessaging, 5*time.Millisecond, nil)
	w.Start(context.Background())
	w.Stop()

	// After Stop returns the goroutine has exited; a second Stop is a no-op.
	w.Stop()
}

func TestMessageSyncWorker_ContextCancelStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessaging := mock.NewMockMessagingService(ctrl)
	mockMessaging.EXPECT().SyncAll(gomock.Any()).Return(nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	w := NewMessageSyncWorker(mockMessaging, 5*time.Millisecond, nil)
	w.Start(ctx)

	cancel()
	w.Stop()
}

func TestMessageSyncWorker_RestartReplacesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessaging := mock.NewMockMessagingService(ctrl)
	mockMessaging.EXPECT().SyncAll(gomock.Any()).Return(nil).AnyTimes()

	w := NewMessageSyncWorker(mockMessaging, 5*time.Millisecond, nil)
	require.NotNil(t, w)

	w.Start(context.Background())
	w.Start(context.Background()) // implicit stop of the first job
	w.Stop()
}
