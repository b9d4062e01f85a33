package constants

import "fmt"

const (
	RoleAdmin     = "admin"
	RoleBendahara = "bendahara"
	RoleKasir     = "kasir"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyFinanceCanAccess = "❌ Hanya admin atau bendahara yang boleh mengakses fitur %s."
	ErrOnlyCashierCanAccess = "❌ Hanya petugas kasir yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorFinance(feature string) string {
	return fmt.Sprintf(ErrOnlyFinanceCanAccess, feature)
}

func RoleErrorCashier(feature string) string {
	return fmt.Sprintf(ErrOnlyCashierCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleBendahara,
		RoleKasir,
	}

	FinanceRoles = []string{
		RoleAdmin,
		RoleBendahara,
	}

	CashierRoles = []string{
		RoleAdmin,
		RoleBendahara,
		RoleKasir,
	}
)
