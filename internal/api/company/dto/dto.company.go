package companydto

// CompanyCreateInput dữ liệu đầu vào khi đăng ký công ty mới
type CompanyCreateInput struct {
	Name         string `json:"name" validate:"required,no_xss,max=200"`
	Description  string `json:"description,omitempty" validate:"omitempty,no_xss,max=1000"`
	AboutUs      string `json:"aboutUs,omitempty" validate:"omitempty,no_xss"`
	OpeningHours string `json:"openingHours,omitempty" validate:"omitempty,max=500"`

	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Whatsapp  string `json:"whatsapp,omitempty" validate:"omitempty,max=30"`
	Address   string `json:"address,omitempty" validate:"omitempty,max=500"`
	Website   string `json:"website,omitempty" validate:"omitempty,url"`
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`

	LogoURL        string   `json:"logoUrl,omitempty" validate:"omitempty,max=1000"`
	BannerURLs     []string `json:"bannerUrls,omitempty" validate:"omitempty,dive,max=1000"`
	PrimaryColor   string   `json:"primaryColor,omitempty" validate:"omitempty,hex_color"`
	SecondaryColor string   `json:"secondaryColor,omitempty" validate:"omitempty,hex_color"`

	LoginCode string `json:"loginCode" validate:"required,max=50"`
	// Secret là mật khẩu chính ở dạng plaintext, sẽ được hash bằng bcrypt trước khi lưu
	Secret string `json:"secret" validate:"required,strong_password" transform:"string,optional"`
	// SecondaryCredentials là tối đa 3 cặp định danh/mật khẩu phụ
	SecondaryCredentials []SecondaryCredentialInput `json:"secondaryCredentials,omitempty" validate:"omitempty,max=3,dive"`
}

// SecondaryCredentialInput một cặp định danh/mật khẩu phụ
type SecondaryCredentialInput struct {
	Username string `json:"username" validate:"required,max=100"`
	Secret   string `json:"secret" validate:"required,strong_password"`
}

// CompanyUpdateInput dữ liệu đầu vào khi cập nhật thông tin công ty.
// Không cho phép cập nhật mật khẩu qua input này, dùng ChangeSecretInput riêng.
type CompanyUpdateInput struct {
	Name         string `json:"name,omitempty" validate:"omitempty,no_xss,max=200"`
	Description  string `json:"description,omitempty" validate:"omitempty,no_xss,max=1000"`
	AboutUs      string `json:"aboutUs,omitempty" validate:"omitempty,no_xss"`
	OpeningHours string `json:"openingHours,omitempty" validate:"omitempty,max=500"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`

	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Whatsapp  string `json:"whatsapp,omitempty" validate:"omitempty,max=30"`
	Address   string `json:"address,omitempty" validate:"omitempty,max=500"`
	Website   string `json:"website,omitempty" validate:"omitempty,url"`
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`

	LogoURL        string   `json:"logoUrl,omitempty" validate:"omitempty,max=1000"`
	BannerURLs     []string `json:"bannerUrls,omitempty" validate:"omitempty,dive,max=1000"`
	PrimaryColor   string   `json:"primaryColor,omitempty" validate:"omitempty,hex_color"`
	SecondaryColor string   `json:"secondaryColor,omitempty" validate:"omitempty,hex_color"`
}

// ChangeSecretInput dữ liệu đầu vào khi đổi mật khẩu chính của công ty
type ChangeSecretInput struct {
	CurrentSecret string `json:"currentSecret" validate:"required"`
	NewSecret     string `json:"newSecret" validate:"required,strong_password"`
}

// SetSecondaryCredentialsInput dữ liệu đầu vào khi thay toàn bộ danh sách đăng nhập phụ
type SetSecondaryCredentialsInput struct {
	Credentials []SecondaryCredentialInput `json:"credentials" validate:"max=3,dive"`
}

// LoginInput dữ liệu đầu vào khi đăng nhập
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required,max=200"`
	Secret     string `json:"secret" validate:"required,max=200"`
}

// LoginResult kết quả trả về sau khi đăng nhập thành công
type LoginResult struct {
	Token     string      `json:"token"`
	IsAdmin   bool        `json:"isAdmin"`
	CompanyID string      `json:"companyId,omitempty"`
	ExpiresAt int64       `json:"expiresAt"`
	Company   interface{} `json:"company,omitempty"`
}

// CompanyIDParams params từ URL chứa ID công ty
type CompanyIDParams struct {
	ID string `uri:"id" validate:"required" transform:"str_objectid"`
}

// SearchStateInput dữ liệu đầu vào khi cập nhật trạng thái tìm kiếm của phiên.
// Dùng con trỏ để phân biệt trường không gửi lên với trường gửi giá trị rỗng
// (xóa từ khóa tìm kiếm cũng phải đưa trang về 1).
type SearchStateInput struct {
	Query *string `json:"query,omitempty" validate:"omitempty,max=200"`
	Mode  *string `json:"mode,omitempty" validate:"omitempty,oneof=byProduct bySeller"`
	Sort  *string `json:"sort,omitempty" validate:"omitempty,oneof=relevance nameAsc priceAsc priceDesc"`
	Page  int64   `json:"page,omitempty" validate:"omitempty,min=1"`
}
