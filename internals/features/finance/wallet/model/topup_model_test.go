// file: internals/features/finance/wallet/model/topup_model_test.go
package model

import "testing"

func TestTopUpIsFinal(t *testing.T) {
	cases := []struct {
		status TopUpStatus
		want   bool
	}{
		{TopUpStatusMenunggu, false},
		{TopUpStatusDiterima, true},
		{TopUpStatusDitolak, true},
	}

	for _, tc := range cases {
		tu := TopUp{TopUpStatus: tc.status}
		if got := tu.IsFinal(); got != tc.want {
			t.Errorf("IsFinal(%s) = %v, mau %v", tc.status, got, tc.want)
		}
	}
}
