// file: internals/route/details/finance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/constants"
	billingKindsController "pesantrenku_backend/internals/features/finance/billing_kinds/controller"
	tagihanController "pesantrenku_backend/internals/features/finance/bills/controller"
	cashbookController "pesantrenku_backend/internals/features/finance/cashbook/controller"
	pembayaranController "pesantrenku_backend/internals/features/finance/payments/controller"
	walletController "pesantrenku_backend/internals/features/finance/wallet/controller"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

/* =========================================================
   /api/u — alur kasir: lihat tagihan, terima pembayaran,
   kelola top-up dompet. Semua role petugas.
========================================================= */

func FinanceUserRoutes(r fiber.Router, db *gorm.DB) {
	tagihanCtrl := &tagihanController.TagihanController{DB: db}
	bayarCtrl := pembayaranController.NewPembayaranController(db)
	walletCtrl := walletController.NewWalletController(db)
	topupCtrl := walletController.NewTopUpController(db)

	// tagihan
	tagihan := r.Group("/tagihan")
	tagihan.Get("/", tagihanCtrl.List)
	tagihan.Get("/:id", tagihanCtrl.Detail)

	// pembayaran & kwitansi
	r.Post("/pembayaran", bayarCtrl.Bayar)
	kwitansi := r.Group("/kwitansi")
	kwitansi.Get("/", bayarCtrl.ListKwitansi)
	kwitansi.Get("/:id", bayarCtrl.DetailKwitansi)
	r.Get("/santri/:id/pembayaran", bayarCtrl.RiwayatSantri)

	// dompet santri
	r.Get("/santri/:id/wallet", walletCtrl.Detail)
	r.Get("/santri/:id/wallet/transaksi", walletCtrl.Transaksi)

	// top-up
	topup := r.Group("/topup")
	topup.Post("/", topupCtrl.Create)
	topup.Get("/", topupCtrl.List)

	// rekening aktif untuk form bukti transfer
	rekeningCtrl := cashbookController.NewRekeningController(db)
	r.Get("/rekening", rekeningCtrl.List)
}

/* =========================================================
   /api/a — admin & bendahara: master jenis tagihan,
   generate tagihan, verifikasi top-up, buku kas, rekening.
========================================================= */

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	jenisCtrl := &billingKindsController.JenisTagihanController{DB: db}
	tagihanCtrl := &tagihanController.TagihanController{DB: db}
	topupCtrl := walletController.NewTopUpController(db)
	kasCtrl := cashbookController.NewBukuKasController(db)
	mutasiCtrl := cashbookController.NewMutasiController(db)
	rekeningCtrl := cashbookController.NewRekeningController(db)

	guard := authMiddleware.OnlyRoles(constants.RoleErrorFinance("keuangan"), constants.FinanceRoles...)

	// jenis tagihan
	jenis := r.Group("/jenis-tagihan", guard)
	jenis.Get("/", jenisCtrl.List)
	jenis.Post("/", jenisCtrl.Create)
	jenis.Patch("/:id", jenisCtrl.Update)
	jenis.Delete("/:id", jenisCtrl.Delete)

	// generate tagihan massal per periode
	r.Post("/tagihan/generate", guard, tagihanCtrl.Generate)

	// verifikasi top-up transfer
	topup := r.Group("/topup", guard)
	topup.Post("/:id/terima", topupCtrl.Terima)
	topup.Post("/:id/tolak", topupCtrl.Tolak)

	// buku kas + mutasi manual
	kas := r.Group("/buku-kas", guard)
	kas.Get("/", kasCtrl.List)
	kas.Post("/", kasCtrl.Create)
	kas.Patch("/:id", kasCtrl.Update)
	kas.Delete("/:id", kasCtrl.Delete)
	kas.Get("/:id/mutasi", mutasiCtrl.List)

	mutasi := r.Group("/mutasi", guard)
	mutasi.Post("/", mutasiCtrl.Create)
	mutasi.Patch("/:id", mutasiCtrl.Update)
	mutasi.Delete("/:id", mutasiCtrl.Delete)

	// rekening bank
	rekening := r.Group("/rekening", guard)
	rekening.Get("/", rekeningCtrl.List)
	rekening.Post("/", rekeningCtrl.Create)
	rekening.Patch("/:id", rekeningCtrl.Update)
}

/* =========================================================
   /api/public — webhook Midtrans (signature-verified)
========================================================= */

func WebhookRoutes(r fiber.Router, db *gorm.DB) {
	webhook := walletController.NewMidtransWebhookController(db, configs.MidtransServerKey)
	r.Post("/midtrans/notification", webhook.Handle)
}
