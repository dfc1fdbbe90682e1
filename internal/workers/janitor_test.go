// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/ulmaulana/FHETalk-sub001/internal/mock"
)

func TestSignatureJanitor_PurgesOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecryption := mock.NewMockDecryptionService(ctrl)

	purged := make(chan struct{}, 1)
	mockDecryption.EXPECT().PurgeExpired(gomock.Any()).DoAndReturn(
		func(context.Context) int {
			select {
			case purged <- struct{}{}:
			default:
			}
			return 2
		},
	).MinTimes(1)

	w := NewSignatureJanitor(mockDecryption, 5*time.Millisecond, nil)
	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-purged:
	case <-time.After(time.Second):
		t.Fatal("janitor never ticked")
	}
}

func TestSignatureJanitor_StopBeforeStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := NewSignatureJanitor(mock.NewMockDecryptionService(ctrl), time.Minute, nil)

	// Should not panic or block when the janitor never started
	w.Stop()
}

func TestSignatureJanitor_StopHaltsTicking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDecryption := mock.NewMockDecryptionService(ctrl)
	mockDecryption.EXPECT().PurgeExpired(gomock.Any()).Return(0).AnyTimes()

	w := NewSignatureJanitor(mockDecryption, 5*time.Millisecond, nil)
	w.Start(context.Background())
	w.Stop()
	w.Stop()
}
