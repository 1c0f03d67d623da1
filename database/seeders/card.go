package seeders

import (
	"context"

	"kartvizit.link/configs/configslog"
	"kartvizit.link/models"
	"kartvizit.link/repositories"
	"kartvizit.link/services"

	"go.uber.org/zap"
)

// DemoCard geliştirme ortamında public sayfayı denemek için oluşturulan kartvizittir.
var DemoCard = models.CardDetail{
	FirstName: "Demo",
	LastName:  "Kartvizit",
	Title:     "Yazılım Geliştirici",
	Company:   "Kartvizit QR",
	Phone:     "+90 555 000 00 00",
	Email:     "demo@example.com",
	Website:   "https://example.com",
	Address:   "İstiklal Cad. No:1, Beyoğlu, İstanbul",
}

// SeedDemoCard hiç kartvizit yoksa demo kartviziti oluşturur ve link anahtarı
// ile yönetim anahtarını loglar.
func SeedDemoCard(ctx context.Context, repo repositories.ICardRepository, svc services.ICardService) error {
	count, err := repo.CountCards(ctx)
	if err != nil {
		configslog.Log.Error("Kartvizit sayısı alınamadı", zap.Error(err))
		return err
	}
	if count > 0 {
		configslog.SLog.Infof("%d kartvizit zaten mevcut, demo kartvizit atlanıyor.", count)
		return nil
	}

	result, err := svc.CreateCard(ctx, DemoCard, nil)
	if err != nil {
		configslog.Log.Error("Demo kartvizit oluşturulamadı", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Demo kartvizit oluşturuldu: /c/%s (yönetim anahtarı: %s)", result.LinkKey, result.ManageToken)
	return nil
}
