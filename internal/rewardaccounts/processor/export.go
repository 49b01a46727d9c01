package processor

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"engage-server/internal/store"
)

var exportHeader = []string{
	"Name",
	"Account Number",
	"External Ref",
	"Reward Type",
	"Currency",
	"Balance",
	"Low Balance Threshold",
	"Status",
	"Assigned Campaigns",
}

// formatMinor renders minor units with two decimals.
func formatMinor(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// ExportCSV writes a header row and one row per account.
func ExportCSV(w io.Writer, accounts []store.RewardAccount) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, a := range accounts {
		row := []string{
			a.Name,
			a.AccountNumber,
			a.ExternalRef,
			a.RewardType,
			a.Currency,
			formatMinor(a.Balance),
			formatMinor(a.LowBalanceThreshold),
			a.Status,
			strings.Join(a.AssignedCampaignIDs, ";"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportRewardAccounts writes the CSV of every account matching the filters,
// ignoring pagination.
func (p *RewardAccountProcessor) ExportRewardAccounts(ctx context.Context, req ListRewardAccountsRequest, w io.Writer) error {
	accounts, err := p.filtered(ctx, req.Search, req.Status, req.RewardType)
	if err != nil {
		return err
	}
	if err := ExportCSV(w, accounts); err != nil {
		p.logger.Error(ctx, "failed to write reward account export", err)
		return err
	}
	return nil
}
