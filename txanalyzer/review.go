package txanalyzer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type ReviewState uint8

const (
	// ReviewReady means Preview can be shown.
	ReviewReady ReviewState = iota + 1
	// ReviewRawManifest means the transaction can only be shown as its raw
	// manifest.
	ReviewRawManifest
	ReviewUnacceptable
	ReviewDepositsRejected
	ReviewFailed
)

func (s ReviewState) String() string {
	switch s {
	case ReviewReady:
		return "ready"
	case ReviewRawManifest:
		return "raw manifest"
	case ReviewUnacceptable:
		return "unacceptable"
	case ReviewDepositsRejected:
		return "deposits rejected"
	case ReviewFailed:
		return "failed"
	}
	return "unknown"
}

// Review is the terminal state of one analysis.
type Review struct {
	ID      uuid.UUID
	State   ReviewState
	Preview PreviewType
	Err     error
}

// Review analyzes summary and maps every failure to one of the review
// states. execErr is the error the execution engine returned instead of a
// summary, if any; summary is ignored then.
func (self *Analyzer) Review(ctx context.Context, summary *common.ExecutionSummary, execErr error) Review {
	review := Review{ID: uuid.New()}
	log := self.Log.With(zap.String("analysis_id", review.ID.String()))

	if execErr != nil {
		review.State, review.Preview, review.Err = fromExecutionError(execErr)
	} else {
		preview, err := self.Analyze(ctx, summary)
		review.State, review.Preview, review.Err = fromAnalysis(summary, preview, err)
	}

	if review.State == ReviewReady {
		log.Info("transaction reviewed", zap.Stringer("state", review.State))
	} else {
		log.Warn("transaction cannot be fully reviewed", zap.Stringer("state", review.State), zap.Error(review.Err))
	}
	return review
}

func fromExecutionError(execErr error) (ReviewState, PreviewType, error) {
	var e *common.ExecutionError
	if errors.As(execErr, &e) {
		switch e.Kind {
		case common.ReservedInstructionsNotAllowed:
			return ReviewUnacceptable, UnacceptableManifest{}, fmt.Errorf("%w: %s", ErrUnacceptableManifest, e)
		case common.OneOfReceivingAccountsDoesNotAllowDeposits:
			return ReviewDepositsRejected, nil, fmt.Errorf("%w: %s", ErrReceivingAccountDoesNotAllowDeposits, e)
		}
	}
	return ReviewFailed, nil, &PreviewError{Cause: execErr}
}

func fromAnalysis(summary *common.ExecutionSummary, preview PreviewType, err error) (ReviewState, PreviewType, error) {
	if err == nil {
		if _, ok := preview.(NonConforming); ok {
			return ReviewRawManifest, preview, nil
		}
		return ReviewReady, preview, nil
	}

	var unresolved *ResourceCouldNotBeResolvedError
	switch {
	case errors.Is(err, ErrUnacceptableManifest):
		return ReviewUnacceptable, UnacceptableManifest{}, err
	case errors.Is(err, ErrReceivingAccountDoesNotAllowDeposits):
		return ReviewDepositsRejected, nil, err
	case errors.As(err, &unresolved) && isGeneral(summary):
		return ReviewRawManifest, NonConforming{}, err
	}
	var previewErr *PreviewError
	if errors.As(err, &previewErr) {
		return ReviewFailed, nil, previewErr
	}
	return ReviewFailed, nil, &PreviewError{Cause: err}
}

func isGeneral(summary *common.ExecutionSummary) bool {
	if summary == nil {
		return false
	}
	_, ok := summary.DetailedClassification.(common.General)
	return ok
}
