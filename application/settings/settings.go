package settings

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sbmotors/dealership/cmd/config"
	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
	settingsrepo "github.com/sbmotors/dealership/repository/settings"
	"github.com/sbmotors/dealership/utils/errors"
	"github.com/sbmotors/dealership/utils/logger"
)

// SettingsApp manages site-wide presentation state: the hero video on the
// landing page, the logo, and social profile links. Uploaded media lands
// under the static dir and is referenced by URL from the settings table.
type SettingsApp interface {
	HeroVideo(ctx context.Context) (string, error)
	SetHeroVideo(ctx context.Context, url string) error
	RemoveHeroVideo(ctx context.Context) error
	LogoURL(ctx context.Context) (string, error)
	SocialLinks(ctx context.Context) (*model.SocialLinksResponse, error)
	SaveSocialLinks(ctx context.Context, req *model.SocialLinksRequest) error

	UploadCarImage(ctx context.Context, filename string, file io.Reader) (*model.UploadResponse, error)
	UploadHeroVideo(ctx context.Context, filename string, file io.Reader) (*model.UploadResponse, error)
	UploadLogo(ctx context.Context, filename string, file io.Reader) (*model.UploadResponse, error)
}

type settingsAppImpl struct {
	config       *config.Config
	settingsRepo settingsrepo.SettingsRepository
}

func NewSettingsApp(config *config.Config, settingsRepo settingsrepo.SettingsRepository) SettingsApp {
	return &settingsAppImpl{config: config, settingsRepo: settingsRepo}
}

func (s *settingsAppImpl) HeroVideo(ctx context.Context) (string, error) {
	return s.getValue(ctx, constant.SettingHeroVideo)
}

func (s *settingsAppImpl) SetHeroVideo(ctx context.Context, url string) error {
	if err := s.settingsRepo.Upsert(ctx, constant.SettingHeroVideo, url); err != nil {
		logger.Error("[SetHeroVideo] upsert", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *settingsAppImpl) RemoveHeroVideo(ctx context.Context) error {
	if err := s.settingsRepo.Delete(ctx, constant.SettingHeroVideo); err != nil {
		logger.Error("[RemoveHeroVideo] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *settingsAppImpl) LogoURL(ctx context.Context) (string, error) {
	return s.getValue(ctx, constant.SettingLogoURL)
}

func (s *settingsAppImpl) SocialLinks(ctx context.Context) (*model.SocialLinksResponse, error) {
	facebook, err := s.getValue(ctx, constant.SettingFacebookURL)
	if err != nil {
		return nil, err
	}
	whatsapp, err := s.getValue(ctx, constant.SettingWhatsappURL)
	if err != nil {
		return nil, err
	}
	instagram, err := s.getValue(ctx, constant.SettingInstagramURL)
	if err != nil {
		return nil, err
	}
	return &model.SocialLinksResponse{
		FacebookURL:  facebook,
		WhatsappURL:  whatsapp,
		InstagramURL: instagram,
	}, nil
}

func (s *settingsAppImpl) SaveSocialLinks(ctx context.Context, req *model.SocialLinksRequest) error {
	pairs := map[string]string{
		constant.SettingFacebookURL:  req.FacebookURL,
		constant.SettingWhatsappURL:  req.WhatsappURL,
		constant.SettingInstagramURL: req.InstagramURL,
	}
	for key, value := range pairs {
		// an empty value clears the link rather than storing a blank
		if value == "" {
			if err := s.settingsRepo.Delete(ctx, key); err != nil {
				logger.Error("[SaveSocialLinks] delete", zap.String("key", key), zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
			continue
		}
		if err := s.settingsRepo.Upsert(ctx, key, value); err != nil {
			logger.Error("[SaveSocialLinks] upsert", zap.String("key", key), zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
	}
	return nil
}

func (s *settingsAppImpl) UploadCarImage(ctx context.Context, filename string, file io.Reader) (*model.UploadResponse, error) {
	name := uuid.NewString() + sanitizeExt(filename)
	return s.saveFile(ctx, "car_images", name, file, "")
}

// UploadHeroVideo stores the file and points the hero_video setting at it.
func (s *settingsAppImpl) UploadHeroVideo(ctx context.Context, filename string, file io.Reader) (*model.UploadResponse, error) {
	name := uuid.NewString() + sanitizeExt(filename)
	return s.saveFile(ctx, "videos", name, file, constant.SettingHeroVideo)
}

// UploadLogo always writes the same filename so the previous logo is
// replaced in place.
func (s *settingsAppImpl) UploadLogo(ctx context.Context, filename string, file io.Reader) (*model.UploadResponse, error) {
	name := "logo" + sanitizeExt(filename)
	return s.saveFile(ctx, "logos", name, file, constant.SettingLogoURL)
}

func (s *settingsAppImpl) saveFile(ctx context.Context, subdir, name string, file io.Reader, settingKey string) (*model.UploadResponse, error) {
	dir := filepath.Join(s.config.Media.StaticDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("[saveFile] mkdir", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	path := filepath.Join(dir, name)
	out, err := os.Create(path)
	if err != nil {
		logger.Error("[saveFile] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		logger.Error("[saveFile] write", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	url := "/static/" + subdir + "/" + name
	if settingKey != "" {
		if err := s.settingsRepo.Upsert(ctx, settingKey, url); err != nil {
			logger.Error("[saveFile] upsert setting", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	logger.Info("[saveFile] stored", zap.String("path", path))
	return &model.UploadResponse{URL: url, Filename: name}, nil
}

func (s *settingsAppImpl) getValue(ctx context.Context, key string) (string, error) {
	entity, err := s.settingsRepo.Get(ctx, key)
	if err != nil {
		logger.Error("[getValue] get setting", zap.String("key", key), zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return "", nil
	}
	return entity.Value, nil
}

// sanitizeExt keeps only a plain extension from the client filename so the
// upload name cannot smuggle path separators.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "" {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
