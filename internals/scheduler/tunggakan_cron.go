// file: internals/scheduler/tunggakan_cron.go
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/features/finance/bills/model"
)

/* =========================================================
   Cron harian penanda tunggakan.
   Flag tagihan_menunggak adalah turunan (jatuh tempo lewat
   & sisa > 0) yang di-precompute supaya laporan tunggakan
   tinggal baca index, bukan membandingkan tanggal per baris.
========================================================= */

// ── ENTRYPOINT: panggil dari main.go
func StartTunggakanCron(db *gorm.DB) {
	schedule := configs.GetEnvOrDefault("TUNGGAKAN_CRON_SCHEDULE", "30 1 * * *")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := TandaiTunggakan(ctx, db, time.Now()); err != nil {
			log.Printf("[TUNGGAKAN] error: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("[TUNGGAKAN] add cron gagal: %v", err)
	}
	log.Printf("[TUNGGAKAN] started schedule=%q", schedule)
	c.Start()
}

// TandaiTunggakan menyinkronkan flag dua arah: set untuk tagihan yang
// lewat jatuh tempo dan masih bersisa, clear untuk yang sudah tidak
// memenuhi (mis. jatuh tempo yang digeser mundur).
func TandaiTunggakan(ctx context.Context, db *gorm.DB, now time.Time) error {
	hariIni := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	res := db.WithContext(ctx).
		Model(&model.Tagihan{}).
		Where("tagihan_jatuh_tempo < ? AND tagihan_sisa_idr > 0 AND tagihan_menunggak = FALSE", hariIni).
		Update("tagihan_menunggak", true)
	if res.Error != nil {
		return res.Error
	}
	ditandai := res.RowsAffected

	res = db.WithContext(ctx).
		Model(&model.Tagihan{}).
		Where("tagihan_menunggak = TRUE AND (tagihan_sisa_idr = 0 OR tagihan_jatuh_tempo >= ?)", hariIni).
		Update("tagihan_menunggak", false)
	if res.Error != nil {
		return res.Error
	}

	log.Printf("[TUNGGAKAN] ditandai=%d dibersihkan=%d", ditandai, res.RowsAffected)
	return nil
}
