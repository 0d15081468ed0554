package txanalyzer

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/logger"
)

// AnalysisContext holds everything an analysis reads besides the execution
// summary itself. It is never written to by the analyzer, so one context
// can serve concurrent analyses.
type AnalysisContext struct {
	Resolver assets.Resolver
	Profile  *accounts.Profile
	Security accounts.SecurityStructureStore
	Log      *zap.Logger
}

// NewAnalysisContext creates an AnalysisContext. A nil logger is replaced by
// a no-op one, a nil profile by an empty one.
func NewAnalysisContext(
	resolver assets.Resolver,
	profile *accounts.Profile,
	security accounts.SecurityStructureStore,
	log *zap.Logger,
) *AnalysisContext {
	if log == nil {
		log = logger.Nop()
	}
	if profile == nil {
		profile = &accounts.Profile{}
	}
	if security == nil {
		security = accounts.NewMemoryStore()
	}
	return &AnalysisContext{
		Resolver: resolver,
		Profile:  profile,
		Security: security,
		Log:      log,
	}
}

// depositGuarantee is the guarantee offset applied to predicted deposits.
func (self *AnalysisContext) depositGuarantee() decimal.Decimal {
	guarantee, _ := self.Profile.DepositGuarantee()
	return guarantee
}
