package domain

// User-facing texts shown by the storefront.
const (
	MsgEmptyQuery       = "Lütfen bir kullanıcı adı girin."
	MsgSelfTarget       = "Kendinize hediye gönderemezsiniz."
	MsgUserNotFound     = "Kullanıcı bulunamadı."
	MsgNotAuthenticated = "Lütfen giriş yapın."
	MsgNoRecipient      = "Lütfen bir kullanıcı seçin."
	MsgInvalidAmount    = "Geçerli bir miktar girin."
	MsgNoItemSelected   = "Lütfen gönderilecek bir eşya seçin."
	MsgInvalidMode      = "Geçersiz hediye türü."
	MsgInProgress       = "İşlem devam ediyor, lütfen bekleyin."

	MsgBalanceGiftSent     = "Kredi başarıyla gönderildi!"
	MsgItemGiftSent        = "Eşya başarıyla gönderildi!"
	MsgBalanceGiftRejected = "Hediye gönderilemedi."
	MsgItemGiftRejected    = "Eşya gönderilemedi."
	MsgGenericFailure      = "Bir hata oluştu."

	MsgChestItemsLoadFailed = "Sandık eşyaları yüklenirken bir hata oluştu."

	DefaultCurrency = "Kredi"
)
