package i18n

// Display strings per language. Menu buttons keep their emoji prefixes stable
// across languages; the presentation layer routes on the prefix, so a user
// with a stale keyboard in another language still lands on the right handler.

var en = Catalog{
	"welcome": "<b>🚗 Welcome to the Car Marketplace!</b>\nSell your car or browse what's on offer using the menu below.",
	"help": "<b>ℹ️ How it works</b>\n" +
		"🚗 <b>Sell a Car</b> — answer a few questions, attach a photo, done.\n" +
		"🔍 <b>Browse Cars</b> — pick a price range and contact sellers directly.\n" +
		"🗂 <b>My Listings</b> — review and delete your own ads.\n" +
		"📊 <b>Market Stats</b> — quick overview of the market.\n" +
		"🌐 <b>Language</b> — switch between English, Français and العربية.",
	"choose_language":  "🌐 Choose your language:",
	"language_changed": "✅ Language set to <b>{lang}</b>.",
	"cancelled":        "❌ Operation cancelled. Back to the main menu.",
	"rate_limited":     "⏳ You are creating listings too quickly. Please try again in a minute.",
	"storage_error":    "⚠️ Something went wrong on our side. Please try again in a moment.",

	"ask_model":           "🚘 <b>Step 1.</b> What car are you selling? Send the make and model (e.g. <i>Toyota Corolla</i>).",
	"ask_year":            "📅 Got it! Which year is it? (e.g. <i>2018</i>)",
	"ask_price":           "💵 What's your asking price? Numbers only.",
	"ask_mileage":         "🛣 What's the mileage? Numbers only, 0 if brand new.",
	"ask_location":        "📍 Where is the car located? (city or area, optional — send anything)",
	"ask_condition":       "⭐ Rate the condition from 1 to 10.",
	"ask_phone":           "📞 What phone number should buyers call?",
	"ask_photo":           "📸 Almost done! Send one photo of the car.",
	"invalid_model":       "⚠️ Please send the car's make and model as text.",
	"invalid_year_format": "⚠️ The year must be exactly 4 digits (e.g. <i>2018</i>). Try again.",
	"invalid_year_range":  "⚠️ The year must be between 1990 and 2025. Try again.",
	"invalid_price":       "⚠️ The price must be a positive whole number. Try again.",
	"invalid_mileage":     "⚠️ The mileage must be a whole number, 0 or more. Try again.",
	"invalid_condition":   "⚠️ The condition must be a whole number from 1 to 10. Try again.",
	"invalid_photo":       "⚠️ Please send a photo to finish your listing.",
	"invalid_input":       "⚠️ That input doesn't look right. Try again.",
	"photo_failed":        "⚠️ Couldn't save that photo. Please send it again.",
	"add_success": "🎉 <b>Your car is listed!</b> (ad #{id})\n\n" +
		"🚘 <b>{model}</b>\n📅 Year: {year}\n💵 Price: ${price}\n🛣 Mileage: {mileage}\n" +
		"📍 Location: {location}\n⭐ Condition: {condition}/10\n📞 Phone: {phone}",

	"explore":        "🔍 Pick a price range:",
	"results_header": "<b>{filter}</b> — {count} result(s), newest first:",
	"no_cars":        "😕 No cars match <b>{filter}</b> right now. Check back later!",
	"end_results":    "That's everything for this filter. Pick another range or go home.",

	"my_cars_header": "🗂 You have <b>{count}</b> active listing(s):",
	"no_listings":    "You haven't listed any cars yet. Tap 🚗 <b>Sell a Car</b> to start.",
	"my_cars_end":    "Tap 🗑 under a listing to remove it.",

	"stats": "📊 <b>Market Stats</b>\nTotal listings: <b>{total}</b>\nUnder $10K: <b>{under_10k}</b>\nUnder $20K: <b>{under_20k}</b>\nUnder $30K: <b>{under_30k}</b>",

	"menu_add":     "🚗 Sell a Car",
	"menu_explore": "🔍 Browse Cars",
	"menu_my":      "🗂 My Listings",
	"menu_stats":   "📊 Market Stats",
	"menu_help":    "ℹ️ Help",
	"menu_lang":    "🌐 Language",
	"btn_cancel":   "❌ Cancel",
	"btn_home":     "🏠 Main Menu",

	"tier_under_10k": "Under $10K",
	"tier_under_20k": "Under $20K",
	"tier_under_30k": "Under $30K",
	"tier_all":       "All Cars",

	"year_label":      "📅 Year:",
	"price_label":     "💵 Price:",
	"mileage_label":   "🛣 Mileage:",
	"location_label":  "📍 Location:",
	"condition_label": "⭐ Condition:",
	"phone_label":     "📞 Phone:",
	"posted_label":    "🕓 Posted:",
	"contact_tip":     "Interested? Contact the seller below.",
	"manage_tip":      "This is your listing.",

	"copy_phone":              "📞 Show phone",
	"message_seller":          "💬 Message seller",
	"phone_copied":            "📞 {phone}",
	"delete":                  "🗑 Delete",
	"yes_delete":              "✅ Yes, delete",
	"no_delete":               "↩️ Keep it",
	"deletion_cancelled":      "Deletion cancelled.",
	"listing_deleted":         "Listing deleted.",
	"listing_deleted_caption": "🗑 This listing has been removed.",
	"delete_failed":           "⚠️ Could not delete this listing.",
}

var fr = Catalog{
	"welcome": "<b>🚗 Bienvenue sur le marché automobile !</b>\nVendez votre voiture ou parcourez les annonces via le menu ci-dessous.",
	"help": "<b>ℹ️ Comment ça marche</b>\n" +
		"🚗 <b>Vendre</b> — répondez à quelques questions, ajoutez une photo, c'est fait.\n" +
		"🔍 <b>Parcourir</b> — choisissez une gamme de prix et contactez les vendeurs.\n" +
		"🗂 <b>Mes annonces</b> — gérez et supprimez vos annonces.\n" +
		"📊 <b>Statistiques</b> — aperçu rapide du marché.\n" +
		"🌐 <b>Langue</b> — English, Français ou العربية.",
	"choose_language":  "🌐 Choisissez votre langue :",
	"language_changed": "✅ Langue définie sur <b>{lang}</b>.",
	"cancelled":        "❌ Opération annulée. Retour au menu principal.",
	"rate_limited":     "⏳ Vous créez des annonces trop vite. Réessayez dans une minute.",
	"storage_error":    "⚠️ Un problème est survenu de notre côté. Réessayez dans un instant.",

	"ask_model":           "🚘 <b>Étape 1.</b> Quelle voiture vendez-vous ? Envoyez la marque et le modèle (ex. <i>Toyota Corolla</i>).",
	"ask_year":            "📅 Très bien ! De quelle année est-elle ? (ex. <i>2018</i>)",
	"ask_price":           "💵 Quel est votre prix ? Chiffres uniquement.",
	"ask_mileage":         "🛣 Quel est le kilométrage ? Chiffres uniquement, 0 si neuve.",
	"ask_location":        "📍 Où se trouve la voiture ? (ville ou région, facultatif)",
	"ask_condition":       "⭐ Notez l'état de 1 à 10.",
	"ask_phone":           "📞 Quel numéro les acheteurs doivent-ils appeler ?",
	"ask_photo":           "📸 Presque fini ! Envoyez une photo de la voiture.",
	"invalid_model":       "⚠️ Envoyez la marque et le modèle sous forme de texte.",
	"invalid_year_format": "⚠️ L'année doit comporter exactement 4 chiffres (ex. <i>2018</i>). Réessayez.",
	"invalid_year_range":  "⚠️ L'année doit être comprise entre 1990 et 2025. Réessayez.",
	"invalid_price":       "⚠️ Le prix doit être un nombre entier positif. Réessayez.",
	"invalid_mileage":     "⚠️ Le kilométrage doit être un nombre entier, 0 ou plus. Réessayez.",
	"invalid_condition":   "⚠️ L'état doit être un nombre entier de 1 à 10. Réessayez.",
	"invalid_photo":       "⚠️ Envoyez une photo pour terminer votre annonce.",
	"invalid_input":       "⚠️ Cette saisie ne semble pas correcte. Réessayez.",
	"photo_failed":        "⚠️ Impossible d'enregistrer cette photo. Renvoyez-la.",
	"add_success": "🎉 <b>Votre voiture est en ligne !</b> (annonce n°{id})\n\n" +
		"🚘 <b>{model}</b>\n📅 Année : {year}\n💵 Prix : ${price}\n🛣 Kilométrage : {mileage}\n" +
		"📍 Lieu : {location}\n⭐ État : {condition}/10\n📞 Téléphone : {phone}",

	"explore":        "🔍 Choisissez une gamme de prix :",
	"results_header": "<b>{filter}</b> — {count} résultat(s), du plus récent :",
	"no_cars":        "😕 Aucune voiture pour <b>{filter}</b> pour le moment. Revenez plus tard !",
	"end_results":    "C'est tout pour ce filtre. Choisissez une autre gamme ou revenez au menu.",

	"my_cars_header": "🗂 Vous avez <b>{count}</b> annonce(s) active(s) :",
	"no_listings":    "Vous n'avez encore rien mis en vente. Touchez 🚗 <b>Vendre</b> pour commencer.",
	"my_cars_end":    "Touchez 🗑 sous une annonce pour la supprimer.",

	"stats": "📊 <b>Statistiques</b>\nAnnonces au total : <b>{total}</b>\nMoins de 10K$ : <b>{under_10k}</b>\nMoins de 20K$ : <b>{under_20k}</b>\nMoins de 30K$ : <b>{under_30k}</b>",

	"menu_add":     "🚗 Vendre",
	"menu_explore": "🔍 Parcourir",
	"menu_my":      "🗂 Mes annonces",
	"menu_stats":   "📊 Statistiques",
	"menu_help":    "ℹ️ Aide",
	"menu_lang":    "🌐 Langue",
	"btn_cancel":   "❌ Annuler",
	"btn_home":     "🏠 Menu principal",

	"tier_under_10k": "Moins de 10K$",
	"tier_under_20k": "Moins de 20K$",
	"tier_under_30k": "Moins de 30K$",
	"tier_all":       "Toutes les voitures",

	"year_label":      "📅 Année :",
	"price_label":     "💵 Prix :",
	"mileage_label":   "🛣 Kilométrage :",
	"location_label":  "📍 Lieu :",
	"condition_label": "⭐ État :",
	"phone_label":     "📞 Téléphone :",
	"posted_label":    "🕓 Publiée :",
	"contact_tip":     "Intéressé ? Contactez le vendeur ci-dessous.",
	"manage_tip":      "Ceci est votre annonce.",

	"copy_phone":              "📞 Voir le numéro",
	"message_seller":          "💬 Écrire au vendeur",
	"phone_copied":            "📞 {phone}",
	"delete":                  "🗑 Supprimer",
	"yes_delete":              "✅ Oui, supprimer",
	"no_delete":               "↩️ Garder",
	"deletion_cancelled":      "Suppression annulée.",
	"listing_deleted":         "Annonce supprimée.",
	"listing_deleted_caption": "🗑 Cette annonce a été retirée.",
	"delete_failed":           "⚠️ Impossible de supprimer cette annonce.",
}

var ar = Catalog{
	"welcome": "<b>🚗 أهلاً بك في سوق السيارات!</b>\nبِع سيارتك أو تصفّح المعروض عبر القائمة أدناه.",
	"help": "<b>ℹ️ كيف يعمل</b>\n" +
		"🚗 <b>بيع سيارة</b> — أجب عن بضعة أسئلة وأرفق صورة.\n" +
		"🔍 <b>تصفّح السيارات</b> — اختر فئة سعرية وتواصل مع البائعين.\n" +
		"🗂 <b>إعلاناتي</b> — راجع إعلاناتك واحذفها.\n" +
		"📊 <b>إحصائيات السوق</b> — نظرة سريعة على السوق.\n" +
		"🌐 <b>اللغة</b> — English أو Français أو العربية.",
	"choose_language":  "🌐 اختر لغتك:",
	"language_changed": "✅ تم ضبط اللغة على <b>{lang}</b>.",
	"cancelled":        "❌ تم إلغاء العملية. عدنا إلى القائمة الرئيسية.",
	"rate_limited":     "⏳ أنت تنشئ إعلانات بسرعة كبيرة. حاول مجدداً بعد دقيقة.",
	"storage_error":    "⚠️ حدث خطأ من جهتنا. حاول مرة أخرى بعد قليل.",

	"ask_model":           "🚘 <b>الخطوة 1.</b> ما السيارة التي تبيعها؟ أرسل الماركة والموديل (مثال: <i>Toyota Corolla</i>).",
	"ask_year":            "📅 ممتاز! ما سنة الصنع؟ (مثال: <i>2018</i>)",
	"ask_price":           "💵 ما السعر المطلوب؟ أرقام فقط.",
	"ask_mileage":         "🛣 كم عدد الكيلومترات؟ أرقام فقط، 0 إذا كانت جديدة.",
	"ask_location":        "📍 أين توجد السيارة؟ (المدينة أو المنطقة، اختياري)",
	"ask_condition":       "⭐ قيّم الحالة من 1 إلى 10.",
	"ask_phone":           "📞 ما الرقم الذي يتصل به المشترون؟",
	"ask_photo":           "📸 أوشكنا على الانتهاء! أرسل صورة واحدة للسيارة.",
	"invalid_model":       "⚠️ أرسل ماركة السيارة وموديلها كنص.",
	"invalid_year_format": "⚠️ يجب أن تتكوّن السنة من 4 أرقام بالضبط (مثال: <i>2018</i>). حاول مجدداً.",
	"invalid_year_range":  "⚠️ يجب أن تكون السنة بين 1990 و2025. حاول مجدداً.",
	"invalid_price":       "⚠️ يجب أن يكون السعر رقماً صحيحاً موجباً. حاول مجدداً.",
	"invalid_mileage":     "⚠️ يجب أن يكون عدد الكيلومترات رقماً صحيحاً، 0 أو أكثر. حاول مجدداً.",
	"invalid_condition":   "⚠️ يجب أن تكون الحالة رقماً صحيحاً من 1 إلى 10. حاول مجدداً.",
	"invalid_photo":       "⚠️ أرسل صورة لإكمال إعلانك.",
	"invalid_input":       "⚠️ هذا الإدخال غير صحيح. حاول مجدداً.",
	"photo_failed":        "⚠️ تعذّر حفظ الصورة. أرسلها مرة أخرى.",
	"add_success": "🎉 <b>تم نشر سيارتك!</b> (إعلان رقم {id})\n\n" +
		"🚘 <b>{model}</b>\n📅 السنة: {year}\n💵 السعر: ${price}\n🛣 الكيلومترات: {mileage}\n" +
		"📍 الموقع: {location}\n⭐ الحالة: {condition}/10\n📞 الهاتف: {phone}",

	"explore":        "🔍 اختر فئة سعرية:",
	"results_header": "<b>{filter}</b> — {count} نتيجة، الأحدث أولاً:",
	"no_cars":        "😕 لا توجد سيارات ضمن <b>{filter}</b> حالياً. عد لاحقاً!",
	"end_results":    "هذا كل شيء لهذا الفلتر. اختر فئة أخرى أو عد إلى القائمة.",

	"my_cars_header": "🗂 لديك <b>{count}</b> إعلان نشط:",
	"no_listings":    "لم تعرض أي سيارة بعد. اضغط 🚗 <b>بيع سيارة</b> للبدء.",
	"my_cars_end":    "اضغط 🗑 أسفل الإعلان لحذفه.",

	"stats": "📊 <b>إحصائيات السوق</b>\nإجمالي الإعلانات: <b>{total}</b>\nأقل من 10 آلاف: <b>{under_10k}</b>\nأقل من 20 ألفاً: <b>{under_20k}</b>\nأقل من 30 ألفاً: <b>{under_30k}</b>",

	"menu_add":     "🚗 بيع سيارة",
	"menu_explore": "🔍 تصفّح السيارات",
	"menu_my":      "🗂 إعلاناتي",
	"menu_stats":   "📊 إحصائيات السوق",
	"menu_help":    "ℹ️ مساعدة",
	"menu_lang":    "🌐 اللغة",
	"btn_cancel":   "❌ إلغاء",
	"btn_home":     "🏠 القائمة الرئيسية",

	"tier_under_10k": "أقل من 10 آلاف",
	"tier_under_20k": "أقل من 20 ألفاً",
	"tier_under_30k": "أقل من 30 ألفاً",
	"tier_all":       "جميع السيارات",

	"year_label":      "📅 السنة:",
	"price_label":     "💵 السعر:",
	"mileage_label":   "🛣 الكيلومترات:",
	"location_label":  "📍 الموقع:",
	"condition_label": "⭐ الحالة:",
	"phone_label":     "📞 الهاتف:",
	"posted_label":    "🕓 نُشر:",
	"contact_tip":     "مهتم؟ تواصل مع البائع أدناه.",
	"manage_tip":      "هذا إعلانك.",

	"copy_phone":              "📞 إظهار الرقم",
	"message_seller":          "💬 مراسلة البائع",
	"phone_copied":            "📞 {phone}",
	"delete":                  "🗑 حذف",
	"yes_delete":              "✅ نعم، احذف",
	"no_delete":               "↩️ احتفظ به",
	"deletion_cancelled":      "تم إلغاء الحذف.",
	"listing_deleted":         "تم حذف الإعلان.",
	"listing_deleted_caption": "🗑 تمت إزالة هذا الإعلان.",
	"delete_failed":           "⚠️ تعذّر حذف هذا الإعلان.",
}
