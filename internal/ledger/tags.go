// Ledger vocabulary: the tag catalog and the verdicts it records.
// Tag strings are persisted names; never rename one.
package ledger

// Beat is the stage of a film's lifecycle an entry was recorded in.
type Beat string

const (
	BeatMarket     Beat = "market"
	BeatConcept    Beat = "concept"
	BeatMoney      Beat = "money"
	BeatTalent     Beat = "talent"
	BeatProduction Beat = "production"
	BeatPremiere   Beat = "premiere"
	BeatLot        Beat = "lot"
	BeatPreprod    Beat = "preprod"
)

// Tag identifies the kind of event an entry records.
type Tag string

// Market and concept.
const (
	TagMarketViewed   Tag = "MARKET_VIEWED"
	TagGenrePicked    Tag = "GENRE_PICKED"
	TagGenreHotPick   Tag = "GENRE_HOT_PICK"
	TagGenreColdPick  Tag = "GENRE_COLD_PICK"
	TagPitchChosen    Tag = "PITCH_CHOSEN"
	TagTitleChosen    Tag = "TITLE_CHOSEN"
	TagRatingChosen   Tag = "RATING_CHOSEN"
	TagSequelGreenlit Tag = "SEQUEL_GREENLIT"
)

// Money.
const (
	TagBudgetTier         Tag = "BUDGET_TIER"
	TagFundingSelf        Tag = "FUNDING_SELF"
	TagFundingDistributor Tag = "FUNDING_DISTRIBUTOR"
	TagFundingInvestor    Tag = "FUNDING_INVESTOR"
	TagBudgetBluffed      Tag = "BUDGET_BLUFFED"
	TagBluffCalled        Tag = "BLUFF_CALLED"
	TagTreasuryDip        Tag = "TREASURY_DIP"
)

// Talent.
const (
	TagTalentHired    Tag = "TALENT_HIRED"
	TagTalentRehired  Tag = "TALENT_REHIRED"
	TagTalentRefused  Tag = "TALENT_REFUSED"
	TagDemandAccepted Tag = "DEMAND_ACCEPTED"
	TagDemandDenied   Tag = "DEMAND_DENIED"
	TagAllStarCast    Tag = "ALL_STAR_CAST"
	TagCheapCast      Tag = "CHEAP_CAST"
	TagMuseUnlocked   Tag = "MUSE_UNLOCKED"
	TagTalentUpgraded Tag = "TALENT_UPGRADED"
)

// Production.
const (
	TagWalkout          Tag = "WALKOUT"
	TagWalkoutForgiven  Tag = "WALKOUT_FORGIVEN"
	TagWalkoutFired     Tag = "WALKOUT_FIRED"
	TagReshoot          Tag = "RESHOOT"
	TagProductionCrisis Tag = "PRODUCTION_CRISIS"
	TagOnSchedule       Tag = "ON_SCHEDULE"
)

// Premiere.
const (
	TagFilmVerdict     Tag = "FILM_VERDICT"
	TagFilmFlop        Tag = "FILM_FLOP"
	TagFilmModest      Tag = "FILM_MODEST"
	TagFilmHit         Tag = "FILM_HIT"
	TagFilmBlockbuster Tag = "FILM_BLOCKBUSTER"
	TagFilmCult        Tag = "FILM_CULT"
	TagCriticsRave     Tag = "CRITICS_RAVE"
	TagCriticsPan      Tag = "CRITICS_PAN"
	TagFilmCompleted   Tag = "FILM_COMPLETED"
)

// Lot and rival.
const (
	TagBuildingBought  Tag = "BUILDING_BOUGHT"
	TagFirstBuilding   Tag = "FIRST_BUILDING"
	TagRideBuilt       Tag = "RIDE_BUILT"
	TagRideDemolished  Tag = "RIDE_DEMOLISHED"
	TagNovaIntroduced  Tag = "NOVA_INTRODUCED"
	TagNovaCopiedGenre Tag = "NOVA_COPIED_GENRE"
	TagNovaBlockbuster Tag = "NOVA_BLOCKBUSTER"
	TagScriptDoctored  Tag = "SCRIPT_DOCTORED"
	TagTestScreening   Tag = "TEST_SCREENING"
	TagPreprodSkipped  Tag = "PREPROD_SKIPPED"
)

// Budget tier details carried by BUDGET_TIER entries.
const (
	BudgetIndie       = "indie"
	BudgetStudio      = "studio"
	BudgetBlockbuster = "blockbuster"
)

// Verdict is the categorical box-office outcome of a film.
type Verdict string

const (
	VerdictFlop        Verdict = "flop"
	VerdictModest      Verdict = "modest"
	VerdictHit         Verdict = "hit"
	VerdictBlockbuster Verdict = "blockbuster"
	VerdictCult        Verdict = "cult"
)

// Success reports whether the verdict counts as a win for the studio.
func (v Verdict) Success() bool {
	return v == VerdictHit || v == VerdictBlockbuster
}

// VerdictTag returns the per-verdict tag logged alongside FILM_VERDICT.
func VerdictTag(v Verdict) Tag {
	switch v {
	case VerdictFlop:
		return TagFilmFlop
	case VerdictModest:
		return TagFilmModest
	case VerdictHit:
		return TagFilmHit
	case VerdictBlockbuster:
		return TagFilmBlockbuster
	case VerdictCult:
		return TagFilmCult
	}
	return ""
}
