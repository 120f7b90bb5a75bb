// Package validation checks form input locally before anything is sent to
// the backend. The rules mirror what the server enforces.
package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/dmitrijs2005/assetkeeper/internal/client/models"
	"github.com/dmitrijs2005/assetkeeper/internal/common"
)

// Errors maps a field name to its message. It matches
// common.ErrorValidation with errors.Is.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == common.ErrorValidation
}

func (e Errors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e Errors) result() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Login checks the login form.
func Login(username, password string) error {
	errs := Errors{}
	if blank(username) {
		errs.add("username", "Vui lòng nhập tên đăng nhập!")
	}
	if password == "" {
		errs.add("password", "Vui lòng nhập mật khẩu!")
	}
	return errs.result()
}

// User checks a user form. Password is required only when creating.
func User(in models.UserInput, creating bool) error {
	errs := Errors{}
	if blank(in.Username) {
		errs.add("username", "Vui lòng nhập tên đăng nhập")
	}
	switch {
	case blank(in.Email):
		errs.add("email", "Vui lòng nhập email")
	case !govalidator.IsEmail(strings.TrimSpace(in.Email)):
		errs.add("email", "Email không hợp lệ")
	}
	if creating && in.Password == "" {
		errs.add("password", "Vui lòng nhập mật khẩu")
	}
	if in.RoleID == 0 {
		errs.add("role_id", "Vui lòng chọn vai trò")
	}
	return errs.result()
}

// Asset checks an asset form.
func Asset(in models.AssetInput) error {
	errs := Errors{}
	if blank(in.Name) {
		errs.add("name", "Vui lòng nhập tên tài sản")
	}
	if in.AssetTypeID == 0 {
		errs.add("asset_type_id", "Vui lòng chọn loại tài sản")
	}
	if in.Price == nil {
		errs.add("price", "Vui lòng nhập giá")
	} else if *in.Price < 0 {
		errs.add("price", "Giá không hợp lệ")
	}
	if in.Quantity != nil && *in.Quantity < 1 {
		errs.add("quantity", "Số lượng không hợp lệ")
	}
	if in.PurchaseDate != "" && !govalidator.IsTime(in.PurchaseDate, "2006-01-02") {
		errs.add("purchase_date", "Ngày mua không hợp lệ")
	}
	return errs.result()
}

// AssetType checks an asset type form.
func AssetType(in models.AssetTypeInput) error {
	errs := Errors{}
	if blank(in.Name) {
		errs.add("name", "Vui lòng nhập tên loại tài sản")
	}
	return errs.result()
}

// Maintenance checks a maintenance form.
func Maintenance(in models.MaintenanceInput) error {
	errs := Errors{}
	if in.AssetID == 0 {
		errs.add("asset_id", "Vui lòng chọn tài sản")
	}
	if blank(in.RequestDate) {
		errs.add("request_date", "Vui lòng nhập ngày yêu cầu")
	} else if !govalidator.IsTime(in.RequestDate, "2006-01-02") {
		errs.add("request_date", "Ngày yêu cầu không hợp lệ")
	}
	if blank(in.MaintenanceReason) {
		errs.add("maintenance_reason", "Vui lòng chọn nguyên nhân bảo trì")
	}
	return errs.result()
}

// Transfer checks a transfer request.
func Transfer(in models.TransferInput) error {
	errs := Errors{}
	if in.AssetID == 0 {
		errs.add("asset_id", "Vui lòng chọn tài sản")
	}
	if in.ToUserID == 0 {
		errs.add("to_user_id", "Vui lòng chọn người nhận")
	}
	return errs.result()
}
