package store

// Settings is the singleton store configuration document,
// kept at settings/store_config and updated with merged field writes.
type Settings struct {
	SiteName       string `bson:"site_name" json:"siteName"`
	WhatsApp       string `bson:"whatsapp" json:"whatsapp"`
	SectionTitleAr string `bson:"section_title_ar,omitempty" json:"sectionTitleAr,omitempty"`
	SectionTitleEn string `bson:"section_title_en,omitempty" json:"sectionTitleEn,omitempty"`
}

// SettingsDocID is the fixed key of the singleton settings document
const SettingsDocID = "store_config"
