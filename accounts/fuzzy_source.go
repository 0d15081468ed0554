package accounts

import (
	"fmt"
	"strings"
)

type FuzzySource []Account

func (self FuzzySource) Len() int {
	return len(self)
}

func (self FuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", self[i].Address, strings.Replace(self[i].DisplayName, " ", "_", -1))
}

func NewFuzzySource(p *Profile) FuzzySource {
	if p == nil {
		return FuzzySource{}
	}
	return FuzzySource(append([]Account{}, p.Accounts...))
}
