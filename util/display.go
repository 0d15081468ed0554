package util

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/radixdlt/babylon-wallet-android-sub006/accounts"
	"github.com/radixdlt/babylon-wallet-android-sub006/assets"
	"github.com/radixdlt/babylon-wallet-android-sub006/common"
	"github.com/radixdlt/babylon-wallet-android-sub006/fees"
	"github.com/radixdlt/babylon-wallet-android-sub006/txanalyzer"
	"github.com/radixdlt/babylon-wallet-android-sub006/ui"
)

// AmountDecimals is the number of fractional digits shown for amounts.
const AmountDecimals = 8

func formatAmount(d decimal.Decimal) string {
	return common.FormatAmount(d, AmountDecimals)
}

// ── Build phase ─────────────────────────────────────────────────────────────

func styledAccount(acc txanalyzer.InvolvedAccount) ui.StyledText {
	short := acc.Address.Address().Short()
	if acc.IsOwned() {
		return ui.Good(fmt.Sprintf("%s (%s)", acc.Profile.DisplayName, short))
	}
	return ui.Warning(short)
}

func styledResource(r assets.Resource) ui.StyledText {
	if r.Name == "" && r.Symbol == "" {
		return ui.Warning(r.DisplayName())
	}
	return ui.Plain(r.DisplayName())
}

func styledAmount(amount txanalyzer.BoundedAmount) (ui.StyledText, string) {
	if amount.IsPredicted() {
		return ui.Warning("~" + formatAmount(amount.Amount)), formatAmount(amount.Guaranteed())
	}
	return ui.Plain(formatAmount(amount.Amount)), ""
}

func itemLabel(item assets.NonFungibleItem) string {
	label := string(item.GlobalID.LocalID)
	if item.Name != "" {
		label = fmt.Sprintf("%s %s", item.Name, label)
	}
	if item.ClaimData != nil {
		label = fmt.Sprintf("%s: %s XRD from epoch %d", label, formatAmount(item.ClaimData.ClaimAmount), item.ClaimData.ClaimEpoch)
	}
	return label
}

func itemLabels(items []assets.NonFungibleItem) []string {
	res := make([]string, 0, len(items))
	for _, item := range items {
		res = append(res, itemLabel(item))
	}
	return res
}

func buildTransferable(t txanalyzer.Transferable) TransferableDisplay {
	resource := t.GetAsset().GetResource()
	d := TransferableDisplay{
		Resource:     styledResource(resource),
		NewlyCreated: t.NewlyCreated(),
	}
	for _, definition := range resource.DAppDefinitions {
		d.DApps = append(d.DApps, definition.Short())
	}
	switch v := t.(type) {
	case txanalyzer.TokenTransferable:
		d.Kind = "token"
		d.Amount, d.Guaranteed = styledAmount(v.Amount)
	case txanalyzer.LiquidStakeUnitTransferable:
		d.Kind = "liquid stake unit"
		d.Amount, d.Guaranteed = styledAmount(v.Amount)
		d.Worth = []string{formatAmount(v.XRDWorth) + " XRD"}
	case txanalyzer.PoolUnitTransferable:
		d.Kind = "pool unit"
		d.Amount, d.Guaranteed = styledAmount(v.Amount)
		for _, pr := range v.Asset.Pool.Resources {
			if worth, ok := v.PerResource[pr.Resource.Address]; ok {
				d.Worth = append(d.Worth, formatAmount(worth)+" "+pr.Resource.DisplayName())
			}
		}
	case txanalyzer.NFTCollectionTransferable:
		d.Kind = "non fungible"
		d.Amount = ui.Plain(fmt.Sprintf("%d", len(v.Amount.Certain)))
		d.Items = itemLabels(v.Amount.Certain)
	case txanalyzer.StakeClaimTransferable:
		d.Kind = "stake claim"
		d.Amount = ui.Plain(fmt.Sprintf("%d", len(v.Amount.Certain)))
		d.Items = itemLabels(v.Amount.Certain)
	}
	return d
}

func buildAccounts(list []txanalyzer.AccountWithTransferables) []AccountDisplay {
	res := make([]AccountDisplay, 0, len(list))
	for _, acc := range list {
		d := AccountDisplay{Account: styledAccount(acc.Account)}
		for _, t := range acc.Transferables {
			d.Transferables = append(d.Transferables, buildTransferable(t))
		}
		res = append(res, d)
	}
	return res
}

func buildTransactionPreview(d *PreviewDisplay, tp txanalyzer.TransactionPreview) {
	d.Withdrawals = buildAccounts(tp.From)
	d.Deposits = buildAccounts(tp.To)
	for _, b := range tp.Badges {
		d.Badges = append(d.Badges, styledResource(b.Resource))
	}
	for _, id := range tp.NewlyCreatedGlobalIDs {
		d.NewlyMinted = append(d.NewlyMinted, id.String())
	}
}

func styledDApp(component common.Address, dapp *assets.DApp) ui.StyledText {
	if dapp == nil || dapp.Name == "" {
		return ui.Bad(component.Short() + " (unknown dApp)")
	}
	return ui.Good(dapp.Name)
}

func depositorLabel(c txanalyzer.DepositorChange) string {
	name := c.Resource.DisplayName()
	if id, ok := c.Depositor.NonFungibleGlobalID(); ok {
		name = fmt.Sprintf("%s %s", name, id.LocalID)
	}
	return fmt.Sprintf("%s %s", c.Change, name)
}

func buildDepositSettings(changes []txanalyzer.AccountDepositSettingsChanges) []DepositSettingsDisplay {
	res := make([]DepositSettingsDisplay, 0, len(changes))
	for _, c := range changes {
		d := DepositSettingsDisplay{Account: styledAccount(c.Account)}
		if c.DepositRule != nil {
			d.DepositRule = c.DepositRule.String()
		}
		for _, p := range c.ResourcePreferenceChanges {
			d.Preferences = append(d.Preferences, fmt.Sprintf("%s %s", p.Change, p.Resource.DisplayName()))
		}
		for _, dc := range c.DepositorChanges {
			d.Depositors = append(d.Depositors, depositorLabel(dc))
		}
		res = append(res, d)
	}
	return res
}

func styledEntity(e accounts.Entity) *ui.StyledText {
	label := ui.Good(fmt.Sprintf("%s (%s)", e.DisplayName, e.Address.Short()))
	return &label
}

func structureLabel(name string, primaryThreshold, factors int) string {
	return fmt.Sprintf("%s (%d of %d primary factors)", name, primaryThreshold, factors)
}

func buildPreview(d *PreviewDisplay, preview txanalyzer.PreviewType) {
	switch p := preview.(type) {
	case txanalyzer.None:
		d.Kind = "no effect"
	case txanalyzer.UnacceptableManifest:
		d.Kind = "unacceptable manifest"
	case txanalyzer.NonConforming:
		d.Kind = "raw manifest"
	case txanalyzer.GeneralTransfer:
		d.Kind = "general transfer"
		buildTransactionPreview(d, p.TransactionPreview)
		for _, e := range p.DApps {
			d.DApps = append(d.DApps, styledDApp(e.Component.Address(), e.DApp))
		}
	case txanalyzer.Transfer:
		d.Kind = "transfer"
		buildTransactionPreview(d, p.TransactionPreview)
	case txanalyzer.PoolTransaction:
		d.Kind = "pool transaction"
		d.Action = p.Action.String()
		buildTransactionPreview(d, p.TransactionPreview)
		for _, pool := range p.Pools {
			d.Pools = append(d.Pools, styledDApp(pool.Pool.Address.Address(), pool.DApp))
		}
	case txanalyzer.Staking:
		d.Kind = "staking"
		d.Action = p.Action.String()
		buildTransactionPreview(d, p.TransactionPreview)
		for _, v := range p.Validators {
			d.Validators = append(d.Validators, ui.Good(v.Name))
		}
	case txanalyzer.AccountsDepositSettings:
		d.Kind = "deposit settings"
		d.DepositSettings = buildDepositSettings(p.Accounts)
	case txanalyzer.DeleteAccount:
		d.Kind = "delete account"
		d.Entity = styledEntity(accounts.Entity{
			Address:     p.Deleting.Address.Address(),
			DisplayName: p.Deleting.DisplayName,
		})
		d.Deposits = buildAccounts(p.To)
		for _, b := range p.Badges {
			d.Badges = append(d.Badges, styledResource(b.Resource))
		}
	case txanalyzer.SecurifyEntity:
		d.Kind = "securify entity"
		d.Entity = styledEntity(p.Entity)
		s := p.Structure
		d.Structure = structureLabel(s.Name, s.PrimaryThreshold, len(s.PrimaryFactors))
	case txanalyzer.UpdateSecurityStructure:
		d.Kind = "security structure update"
		d.Action = p.Phase.String()
		d.Entity = styledEntity(p.Entity)
		if s := p.Structure; s != nil {
			d.Structure = structureLabel(s.Name, s.PrimaryThreshold, len(s.PrimaryFactors))
		}
	}
}

// BuildFeesDisplay turns fees into their printable form.
func BuildFeesDisplay(f fees.TransactionFees) *FeesDisplay {
	return &FeesDisplay{
		NetworkFee:     formatAmount(f.NetworkFee()),
		RoyaltyFee:     formatAmount(f.RoyaltyCost),
		Locked:         formatAmount(f.NonContingentLock),
		TransactionFee: formatAmount(f.DefaultTransactionFee()),
		Guarantees:     f.GuaranteesCount,
		IncludeLockFee: f.IncludeLockFee,
	}
}

// BuildPreviewDisplay turns a review into its printable form without
// printing anything. f is nil when the fees are not shown.
func BuildPreviewDisplay(review txanalyzer.Review, f *fees.TransactionFees) *PreviewDisplay {
	d := &PreviewDisplay{
		ID:    review.ID.String(),
		State: review.State.String(),
	}
	if review.Err != nil {
		d.Error = review.Err.Error()
	}
	if review.Preview != nil {
		buildPreview(d, review.Preview)
	}
	if f != nil {
		d.Fees = BuildFeesDisplay(*f)
	}
	return d
}

// ── Print phase ─────────────────────────────────────────────────────────────

func printAccounts(u ui.UI, heading string, list []AccountDisplay) {
	if len(list) == 0 {
		return
	}
	u.Section(heading)
	groups := make([][][]string, 0, len(list))
	for _, acc := range list {
		group := [][]string{}
		for i, t := range acc.Transferables {
			account := ""
			if i == 0 {
				account = u.Style(acc.Account)
			}
			amount := u.Style(t.Amount)
			if t.Guaranteed != "" {
				amount = fmt.Sprintf("%s (guaranteed %s)", amount, t.Guaranteed)
			}
			resource := u.Style(t.Resource)
			if t.NewlyCreated {
				resource += " [new]"
			}
			detail := append(append([]string{}, t.Worth...), t.Items...)
			for _, dapp := range t.DApps {
				detail = append(detail, "dApp "+dapp)
			}
			group = append(group, []string{account, resource, amount, strings.Join(detail, ", ")})
		}
		if len(group) == 0 {
			group = append(group, []string{u.Style(acc.Account), "", "", ""})
		}
		groups = append(groups, group)
	}
	u.TableWithGroups([]string{"Account", "Resource", "Amount", "Details"}, groups)
}

func printList(u ui.UI, label string, values []ui.StyledText) {
	if len(values) == 0 {
		return
	}
	styled := make([]string, 0, len(values))
	for _, v := range values {
		styled = append(styled, u.Style(v))
	}
	u.Info("%s: %s", label, strings.Join(styled, ", "))
}

func printDepositSettings(u ui.UI, list []DepositSettingsDisplay) {
	for _, s := range list {
		u.Critical("%s", u.Style(s.Account))
		rows := [][2]string{}
		if s.DepositRule != "" {
			rows = append(rows, [2]string{"Deposit rule", s.DepositRule})
		}
		for _, p := range s.Preferences {
			rows = append(rows, [2]string{"Resource", p})
		}
		for _, dep := range s.Depositors {
			rows = append(rows, [2]string{"Depositor", dep})
		}
		u.Indent().KeyValue(rows)
	}
}

func printFees(u ui.UI, f *FeesDisplay) {
	u.Section("Fees")
	lockFee := "no"
	if f.IncludeLockFee {
		lockFee = "yes"
	}
	u.Table(nil, [][]string{
		{"Network fee", f.NetworkFee + " XRD"},
		{"Royalty fee", f.RoyaltyFee + " XRD"},
		{"Already locked", f.Locked + " XRD"},
		{"Guarantees", fmt.Sprintf("%d", f.Guarantees)},
		{"Adds lock fee", lockFee},
		{"Transaction fee", f.TransactionFee + " XRD"},
	})
}

func printPreviewDisplay(u ui.UI, d *PreviewDisplay) {
	header := [][]string{{"Review", d.ID}, {"State", d.State}}
	if d.Kind != "" {
		kind := cases.Title(language.English).String(d.Kind)
		if d.Action != "" {
			kind = fmt.Sprintf("%s (%s)", kind, d.Action)
		}
		header = append(header, []string{"Kind", kind})
	}
	u.Table(nil, header)
	if d.Error != "" {
		u.Error("%s", d.Error)
	}
	if d.Entity != nil {
		u.Critical("Entity: %s", u.Style(*d.Entity))
	}
	if d.Structure != "" {
		u.Critical("Security structure: %s", d.Structure)
	}
	printList(u, "dApps", d.DApps)
	printList(u, "Pools", d.Pools)
	printList(u, "Validators", d.Validators)
	printAccounts(u, "Withdrawals", d.Withdrawals)
	printAccounts(u, "Deposits", d.Deposits)
	printList(u, "Presented badges", d.Badges)
	if len(d.NewlyMinted) > 0 {
		u.Info("Newly minted: %s", strings.Join(d.NewlyMinted, ", "))
	}
	if len(d.DepositSettings) > 0 {
		u.Section("Deposit settings")
		printDepositSettings(u, d.DepositSettings)
	}
	if d.Fees != nil {
		printFees(u, d.Fees)
	}
}

// ── Public API ───────────────────────────────────────────────────────────────

// DisplayReview builds the printable form of review and writes it to u.
// The returned value is what --json prints.
func DisplayReview(u ui.UI, review txanalyzer.Review, f *fees.TransactionFees) *PreviewDisplay {
	d := BuildPreviewDisplay(review, f)
	printPreviewDisplay(u, d)
	return d
}

// DisplayFees prints only the fee figures.
func DisplayFees(u ui.UI, f fees.TransactionFees) *FeesDisplay {
	d := BuildFeesDisplay(f)
	printFees(u, d)
	return d
}
