package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Movement is one dated debit/credit against a single account, with the
// running balance after it.
type Movement struct {
	Date        time.Time
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// AccountLedger is the Libro Mayor / Libro Auxiliar view of one account:
// every movement in date order plus totals. The running balance treats debit
// as positive and credit as negative regardless of account nature.
type AccountLedger struct {
	AccountKey   string
	AccountName  string
	Movements    []Movement
	TotalDebit   decimal.Decimal
	TotalCredit  decimal.Decimal
	FinalBalance decimal.Decimal
}

// AccountRef identifies a selectable account in the projection.
type AccountRef struct {
	Key  string
	Name string
}

// Accounts lists every account touched by the journal, sorted by display
// name, for the auxiliary-ledger selector.
func Accounts(asientos []Asiento) []AccountRef {
	seen := make(map[string]string)
	for _, a := range asientos {
		for _, l := range a.Lines {
			if _, ok := seen[l.AccountKey]; !ok {
				seen[l.AccountKey] = l.AccountName
			}
		}
	}
	refs := make([]AccountRef, 0, len(seen))
	for key, name := range seen {
		refs = append(refs, AccountRef{Key: key, Name: name})
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Name == refs[j].Name {
			return refs[i].Key < refs[j].Key
		}
		return refs[i].Name < refs[j].Name
	})
	return refs
}

// accountLedger collects one account's movements from the journal and runs
// the balance. Asientos are expected date-ascending, as BuildJournal returns
// them; the extra stable sort keeps callers honest.
func accountLedger(asientos []Asiento, key, name string) AccountLedger {
	ledger := AccountLedger{
		AccountKey:   key,
		AccountName:  name,
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		FinalBalance: decimal.Zero,
	}

	for _, a := range asientos {
		for _, l := range a.Lines {
			if l.AccountKey != key {
				continue
			}
			ledger.Movements = append(ledger.Movements, Movement{
				Date:        a.Date,
				Description: a.Description,
				Debit:       l.Debit,
				Credit:      l.Credit,
			})
		}
	}

	sort.SliceStable(ledger.Movements, func(i, j int) bool {
		return ledger.Movements[i].Date.Before(ledger.Movements[j].Date)
	})

	balance := decimal.Zero
	for i := range ledger.Movements {
		m := &ledger.Movements[i]
		balance = balance.Add(m.Debit).Sub(m.Credit)
		m.Balance = balance
		ledger.TotalDebit = ledger.TotalDebit.Add(m.Debit)
		ledger.TotalCredit = ledger.TotalCredit.Add(m.Credit)
	}
	ledger.FinalBalance = balance
	return ledger
}

// GeneralLedger aggregates the whole journal into per-account ledgers, one
// per touched account, in account-name order: the Libro Mayor.
func GeneralLedger(asientos []Asiento) []AccountLedger {
	refs := Accounts(asientos)
	ledgers := make([]AccountLedger, 0, len(refs))
	for _, ref := range refs {
		ledgers = append(ledgers, accountLedger(asientos, ref.Key, ref.Name))
	}
	return ledgers
}

// AuxiliaryLedger is the Libro Auxiliar: the general ledger narrowed to one
// selected account. ok is false when the account has no movements in the
// journal, the empty-state signal rather than an error.
func AuxiliaryLedger(asientos []Asiento, accountKey string) (AccountLedger, bool) {
	for _, ref := range Accounts(asientos) {
		if ref.Key == accountKey {
			return accountLedger(asientos, ref.Key, ref.Name), true
		}
	}
	return AccountLedger{}, false
}

// Period returns the journal's date span for report headers. ok is false for
// an empty journal.
func Period(asientos []Asiento) (min, max time.Time, ok bool) {
	if len(asientos) == 0 {
		return time.Time{}, time.Time{}, false
	}
	min, max = asientos[0].Date, asientos[0].Date
	for _, a := range asientos[1:] {
		if a.Date.Before(min) {
			min = a.Date
		}
		if a.Date.After(max) {
			max = a.Date
		}
	}
	return min, max, true
}
