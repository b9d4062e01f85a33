// file: internals/features/finance/wallet/controller/topup_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	santriModel "pesantrenku_backend/internals/features/santri/model"
	helper "pesantrenku_backend/internals/helpers"

	"pesantrenku_backend/internals/features/finance/wallet/dto"
	"pesantrenku_backend/internals/features/finance/wallet/model"
	"pesantrenku_backend/internals/features/finance/wallet/service"
)

type TopUpController struct {
	DB *gorm.DB
}

func NewTopUpController(db *gorm.DB) *TopUpController {
	return &TopUpController{DB: db}
}

/* =========================================================
   POST /api/u/topup — catat top-up dompet
   cash → langsung diterima + kredit dompet
   transfer → menunggu verifikasi bendahara (butuh bukti + rekening)
   gateway → order Midtrans, dikonfirmasi webhook
========================================================= */

func (ctrl *TopUpController) Create(c *fiber.Ctx) error {
	var body dto.TopUpCreateDTO
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if body.Metode == string(model.TopUpMetodeTransfer) {
		if body.BuktiURL == nil || body.RekeningID == nil {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity,
				"top-up transfer wajib menyertakan bukti_url dan rekening_id")
		}
	}

	var santri santriModel.Santri
	if err := ctrl.DB.First(&santri, "santri_id = ?", body.SantriID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa santri")
	}

	tu := model.TopUp{
		TopUpSantriID:   body.SantriID,
		TopUpJumlahIDR:  body.JumlahIDR,
		TopUpMetode:     model.TopUpMetode(body.Metode),
		TopUpStatus:     model.TopUpStatusMenunggu,
		TopUpBuktiURL:   body.BuktiURL,
		TopUpRekeningID: body.RekeningID,
	}
	if err := ctrl.DB.Create(&tu).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan top-up")
	}

	resp := dto.ToTopUpResponse(&tu)

	switch tu.TopUpMetode {
	case model.TopUpMetodeCash:
		// uang sudah di tangan kasir, langsung final
		petugasID, _ := helper.GetUserIDFromLocals(c)
		petugasNama := helper.GetUserNameFromLocals(c)
		final, err := service.TerimaTopUp(c.Context(), ctrl.DB, tu.TopUpID, &petugasID, &petugasNama, nil)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		resp = dto.ToTopUpResponse(&final)

	case model.TopUpMetodeGateway:
		// order id disimpan dulu supaya webhook selalu bisa mencocokkan,
		// walau pembuatan snap token gagal di tengah
		orderID := service.BuildTopUpOrderID(&tu)
		tu.TopUpOrderID = &orderID
		if err := ctrl.DB.Model(&tu).Update("topup_order_id", orderID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan order top-up")
		}

		token, redirectURL, err := service.GenerateSnapToken(&tu, service.CustomerInput{Nama: santri.SantriNama})
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
		}
		tu.TopUpSnapToken = &token
		if err := ctrl.DB.Model(&tu).Update("topup_snap_token", token).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan snap token")
		}
		resp = dto.ToTopUpResponse(&tu)
		resp.RedirectURL = &redirectURL
	}

	return helper.JsonCreated(c, "Top-up dicatat", resp)
}

/* =========================================================
   GET /api/u/topup — daftar top-up
   Filter: santri_id, status, metode
========================================================= */

func (ctrl *TopUpController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.Model(&model.TopUp{})
	if v := strings.TrimSpace(c.Query("santri_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "santri_id tidak valid")
		}
		q = q.Where("topup_santri_id = ?", id)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("topup_status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("metode")); v != "" {
		q = q.Where("topup_metode = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung top-up")
	}

	var rows []model.TopUp
	if err := q.
		Order("topup_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil top-up")
	}

	return helper.JsonList(c, "", dto.ToTopUpResponses(rows), p.Meta(total))
}

/* =========================================================
   POST /api/a/topup/:id/terima  — verifikasi bendahara
   POST /api/a/topup/:id/tolak
========================================================= */

func (ctrl *TopUpController) Terima(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID top-up tidak valid")
	}
	var body dto.TopUpKeputusanDTO
	_ = c.BodyParser(&body)

	verifikatorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	verifikatorNama := helper.GetUserNameFromLocals(c)

	tu, err := service.TerimaTopUp(c.Context(), ctrl.DB, id, &verifikatorID, &verifikatorNama, body.Catatan)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Top-up diterima", dto.ToTopUpResponse(&tu))
}

func (ctrl *TopUpController) Tolak(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID top-up tidak valid")
	}
	var body dto.TopUpKeputusanDTO
	_ = c.BodyParser(&body)

	verifikatorID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	verifikatorNama := helper.GetUserNameFromLocals(c)

	tu, err := service.TolakTopUp(c.Context(), ctrl.DB, id, &verifikatorID, &verifikatorNama, body.Catatan)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Top-up ditolak", dto.ToTopUpResponse(&tu))
}
