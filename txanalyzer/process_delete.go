package txanalyzer

import (
	"context"
	"fmt"

	"github.com/radixdlt/babylon-wallet-android-sub006/common"
)

type deleteAccountsProcessor struct {
	a              *Analyzer
	classification common.DeleteAccounts
}

// process resolves the deleted account and where its assets go. Withdrawals
// are not shown: everything the account holds leaves it.
func (p deleteAccountsProcessor) process(ctx context.Context, summary *common.ExecutionSummary) (PreviewType, error) {
	if len(p.classification.Accounts) != 1 {
		return nil, fmt.Errorf("deleting %d accounts in one transaction is not supported", len(p.classification.Accounts))
	}
	address := p.classification.Accounts[0]
	deleting, found := p.a.Profile.Account(address)
	if !found {
		return nil, &EntityNotFoundError{Address: address.Address()}
	}

	res, err := p.a.resolve(ctx, summary)
	if err != nil {
		return nil, err
	}
	badges := res.badges()
	to, err := res.accounts(p.a.Profile, summary.Deposits, p.a.depositGuarantee())
	if err != nil {
		return nil, err
	}
	return DeleteAccount{Deleting: *deleting, To: to, Badges: badges}, nil
}
