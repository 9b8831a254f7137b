package services

import (
	"time"

	"airsoft-manager-backend/internal/models"
	"airsoft-manager-backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes backed by slices so iteration order is stable.

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) UpdateUser(user *models.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeGameRepo struct {
	games []*models.Game
}

func (f *fakeGameRepo) CreateGame(game *models.Game) error {
	f.games = append(f.games, game)
	return nil
}

func (f *fakeGameRepo) GetGameByID(id string) (*models.Game, error) {
	for _, g := range f.games {
		if g.ID.String() == id {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGameRepo) GetActiveGame() (*models.Game, error) {
	for _, g := range f.games {
		if g.IsActive && !g.IsClosed {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGameRepo) ListGames(offset, limit int) ([]models.Game, error) {
	out := []models.Game{}
	for i, g := range f.games {
		if i < offset {
			continue
		}
		if len(out) >= limit {
			break
		}
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeGameRepo) UpdateGame(game *models.Game) error {
	for i, g := range f.games {
		if g.ID == game.ID {
			f.games[i] = game
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeGameRepo) FindGamesNeedingReminder(date time.Time) ([]models.Game, error) {
	y, m, d := date.Date()
	out := []models.Game{}
	for _, g := range f.games {
		gy, gm, gd := g.Date.Date()
		if gy == y && gm == m && gd == d && !g.ReminderSent {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) MarkReminderSent(id string) error {
	for _, g := range f.games {
		if g.ID.String() == id {
			g.ReminderSent = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeRegRepo struct {
	regs      []*models.Registration
	tags      *fakeTagRepo
	updateErr error
	deleteErr error
}

func (f *fakeRegRepo) CreateRegistration(reg *models.Registration) error {
	f.regs = append(f.regs, reg)
	return nil
}

func (f *fakeRegRepo) GetRegistrationByID(id string) (*models.Registration, error) {
	for _, r := range f.regs {
		if r.ID.String() == id {
			copied := *r
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRegRepo) ListRegistrationsByGame(gameID string) ([]models.Registration, error) {
	out := []models.Registration{}
	for _, r := range f.regs {
		if r.GameID.String() == gameID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRegRepo) ListConfirmedByGame(gameID string) ([]models.Registration, error) {
	out := []models.Registration{}
	for _, r := range f.regs {
		if r.GameID.String() == gameID && r.Confirmed {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRegRepo) UpdateRegistration(reg *models.Registration) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i, r := range f.regs {
		if r.ID == reg.ID {
			copied := *reg
			f.regs[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRegRepo) DeleteRegistration(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.regs {
		if r.ID.String() == id {
			f.regs = append(f.regs[:i], f.regs[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRegRepo) CountByPaymentType(paymentTypeID string) (int64, error) {
	var n int64
	for _, r := range f.regs {
		if r.PaymentTypeID != nil && r.PaymentTypeID.String() == paymentTypeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegRepo) CountByTag(tagID string) (int64, error) {
	var n int64
	for _, r := range f.regs {
		if r.TagID != nil && r.TagID.String() == tagID {
			n++
		}
	}
	return n, nil
}

// Transaction mirrors the database contract: writes made through the repos
// handed to txFunc only land if txFunc succeeds, while writes made through
// any other repository take effect immediately.
func (f *fakeRegRepo) Transaction(txFunc func(repositories.RegistrationTxRepos) error) error {
	txRegs := &fakeRegRepo{regs: copyRegs(f.regs), updateErr: f.updateErr, deleteErr: f.deleteErr}
	txTags := &fakeTagRepo{}
	if f.tags != nil {
		txTags.tags = copyTags(f.tags.tags)
	}

	if err := txFunc(repositories.RegistrationTxRepos{Registrations: txRegs, Tags: txTags}); err != nil {
		return err
	}

	f.regs = txRegs.regs
	if f.tags != nil {
		f.tags.tags = txTags.tags
	}
	return nil
}

func copyRegs(regs []*models.Registration) []*models.Registration {
	out := make([]*models.Registration, len(regs))
	for i, r := range regs {
		copied := *r
		out[i] = &copied
	}
	return out
}

func copyTags(tags []*models.Tag) []*models.Tag {
	out := make([]*models.Tag, len(tags))
	for i, tag := range tags {
		copied := *tag
		out[i] = &copied
	}
	return out
}

type fakeTagRepo struct {
	tags []*models.Tag
}

func (f *fakeTagRepo) CreateTag(tag *models.Tag) error {
	f.tags = append(f.tags, tag)
	return nil
}

func (f *fakeTagRepo) GetTagByID(id string) (*models.Tag, error) {
	for _, t := range f.tags {
		if t.ID.String() == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTagRepo) GetTagByNumber(number string) (*models.Tag, error) {
	for _, t := range f.tags {
		if t.TagNumber == number {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTagRepo) ListTags() ([]models.Tag, error) {
	out := []models.Tag{}
	for _, t := range f.tags {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTagRepo) UpdateTag(tag *models.Tag) error {
	for i, t := range f.tags {
		if t.ID == tag.ID {
			copied := *tag
			f.tags[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTagRepo) DeleteTag(id string) error {
	for i, t := range f.tags {
		if t.ID.String() == id {
			f.tags = append(f.tags[:i], f.tags[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakePaymentTypeRepo struct {
	types []*models.PaymentType
}

func (f *fakePaymentTypeRepo) CreatePaymentType(pt *models.PaymentType) error {
	f.types = append(f.types, pt)
	return nil
}

func (f *fakePaymentTypeRepo) GetPaymentTypeByID(id string) (*models.PaymentType, error) {
	for _, pt := range f.types {
		if pt.ID.String() == id {
			copied := *pt
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentTypeRepo) GetPaymentTypeByName(name string) (*models.PaymentType, error) {
	for _, pt := range f.types {
		if pt.Name == name {
			copied := *pt
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePaymentTypeRepo) ListPaymentTypes() ([]models.PaymentType, error) {
	out := []models.PaymentType{}
	for _, pt := range f.types {
		out = append(out, *pt)
	}
	return out, nil
}

func (f *fakePaymentTypeRepo) UpdatePaymentType(pt *models.PaymentType) error {
	for i, existing := range f.types {
		if existing.ID == pt.ID {
			copied := *pt
			f.types[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePaymentTypeRepo) DeletePaymentType(id string) error {
	for i, pt := range f.types {
		if pt.ID.String() == id {
			f.types = append(f.types[:i], f.types[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakePartnerRepo struct {
	partners []*models.PartnerAssociation
}

func (f *fakePartnerRepo) CreatePartnerAssociation(assoc *models.PartnerAssociation) error {
	f.partners = append(f.partners, assoc)
	return nil
}

func (f *fakePartnerRepo) GetPartnerAssociationByID(id string) (*models.PartnerAssociation, error) {
	for _, p := range f.partners {
		if p.ID.String() == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePartnerRepo) GetPartnerAssociationByName(name string) (*models.PartnerAssociation, error) {
	for _, p := range f.partners {
		if p.Name == name {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePartnerRepo) ListPartnerAssociations() ([]models.PartnerAssociation, error) {
	out := []models.PartnerAssociation{}
	for _, p := range f.partners {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakePartnerRepo) ListActivePartnerAssociations() ([]models.PartnerAssociation, error) {
	out := []models.PartnerAssociation{}
	for _, p := range f.partners {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePartnerRepo) UpdatePartnerAssociation(assoc *models.PartnerAssociation) error {
	for i, p := range f.partners {
		if p.ID == assoc.ID {
			copied := *assoc
			f.partners[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakePartnerRepo) DeletePartnerAssociation(id string) error {
	for i, p := range f.partners {
		if p.ID.String() == id {
			f.partners = append(f.partners[:i], f.partners[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeSettingsRepo struct {
	pricing *models.PricingSettings
	site    *models.SiteSettings
	rules   *models.Rules
}

func (f *fakeSettingsRepo) GetOrInitPricingSettings() (*models.PricingSettings, error) {
	if f.pricing == nil {
		f.pricing = &models.PricingSettings{
			PartnerAssociationPrice: 5,
			OtherAssociationPrice:   7,
			FreelancePrice:          9,
		}
	}
	return f.pricing, nil
}

func (f *fakeSettingsRepo) UpdatePricingSettings(settings *models.PricingSettings) error {
	f.pricing = settings
	return nil
}

func (f *fakeSettingsRepo) GetOrInitSiteSettings() (*models.SiteSettings, error) {
	if f.site == nil {
		f.site = &models.SiteSettings{
			SiteTitle:    "Welcome to the LSPA field",
			PrimaryColor: "#4CAF50",
		}
	}
	return f.site, nil
}

func (f *fakeSettingsRepo) UpdateSiteSettings(settings *models.SiteSettings) error {
	f.site = settings
	return nil
}

func (f *fakeSettingsRepo) GetOrInitRules() (*models.Rules, error) {
	if f.rules == nil {
		f.rules = &models.Rules{}
	}
	return f.rules, nil
}

func (f *fakeSettingsRepo) UpdateRules(rules *models.Rules) error {
	f.rules = rules
	return nil
}

type fakeVersionRepo struct {
	versions []*models.RuleVersion
}

func (f *fakeVersionRepo) CreateRuleVersion(version *models.RuleVersion) error {
	f.versions = append(f.versions, version)
	return nil
}

func (f *fakeVersionRepo) GetRuleVersionByID(id string) (*models.RuleVersion, error) {
	for _, v := range f.versions {
		if v.ID.String() == id {
			copied := *v
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeVersionRepo) ListRuleVersions() ([]models.RuleVersion, error) {
	out := []models.RuleVersion{}
	for _, v := range f.versions {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeVersionRepo) CountRuleVersions() (int64, error) {
	return int64(len(f.versions)), nil
}

func (f *fakeVersionRepo) DeleteRuleVersion(id string) error {
	for i, v := range f.versions {
		if v.ID.String() == id {
			f.versions = append(f.versions[:i], f.versions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeMembershipRepo struct {
	apps []*models.MembershipApplication
}

func (f *fakeMembershipRepo) CreateApplication(app *models.MembershipApplication) error {
	f.apps = append(f.apps, app)
	return nil
}

func (f *fakeMembershipRepo) GetApplicationByID(id string) (*models.MembershipApplication, error) {
	for _, a := range f.apps {
		if a.ID.String() == id {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMembershipRepo) ListApplications() ([]models.MembershipApplication, error) {
	out := []models.MembershipApplication{}
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeMembershipRepo) CountPendingApplications() (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.Status == models.ApprovalPending {
			n++
		}
	}
	return n, nil
}

func (f *fakeMembershipRepo) UpdateApplication(app *models.MembershipApplication) error {
	for i, a := range f.apps {
		if a.ID == app.ID {
			copied := *app
			f.apps[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// fakeNotifier records every send and can be told to fail for specific
// addresses.
type fakeNotifier struct {
	confirmations []string
	approvals     []string
	rejections    []string
	reminders     []string
	failFor       map[string]error
}

func (f *fakeNotifier) fail(email string) error {
	if f.failFor == nil {
		return nil
	}
	return f.failFor[email]
}

func (f *fakeNotifier) SendConfirmationEmail(email, firstName string, gameDate time.Time, registrationID string) error {
	if err := f.fail(email); err != nil {
		return err
	}
	f.confirmations = append(f.confirmations, email)
	return nil
}

func (f *fakeNotifier) SendApprovalEmail(email, firstName string, gameDate time.Time) error {
	if err := f.fail(email); err != nil {
		return err
	}
	f.approvals = append(f.approvals, email)
	return nil
}

func (f *fakeNotifier) SendRejectionEmail(email, firstName string, gameDate time.Time, reason string) error {
	if err := f.fail(email); err != nil {
		return err
	}
	f.rejections = append(f.rejections, email)
	return nil
}

func (f *fakeNotifier) SendReminderEmail(email, firstName string, gameDate time.Time) error {
	if err := f.fail(email); err != nil {
		return err
	}
	f.reminders = append(f.reminders, email)
	return nil
}
