package stylesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/shaharia-lab/vstyle/internal/registry"
	"github.com/tidwall/gjson"
)

var (
	typePatchPattern = regexp.MustCompile(`\$type_patch\{[\s\S]*?\};`)
	envPatchPattern  = regexp.MustCompile(`\$env_patch\{[\s\S]*?\}`)
	urlPattern       = regexp.MustCompile(`\$url\{[^}]*\}`)
)

// version qualifiers, two character operators first
var qualifiers = []string{"==", "!=", ">=", "<=", ">", "<"}

func directiveBody(match, name string) (string, error) {
	body := strings.TrimPrefix(match, name)
	if !gjson.Valid(body) {
		return "", fmt.Errorf("%w: %s", ErrInvalidDirective, match)
	}
	return body, nil
}

// typePatches maps every $type_patch{...} directive to its value when the
// variant is listed in "types", or to an empty string. The terminating ";"
// is not part of the key and stays in the text.
func typePatches(template string, variant registry.Variant) (map[string]string, error) {
	replacements := map[string]string{}
	for _, match := range typePatchPattern.FindAllString(template, -1) {
		key := strings.TrimSuffix(match, ";")
		body, err := directiveBody(key, "$type_patch")
		if err != nil {
			return nil, err
		}

		types := gjson.Get(body, "types")
		value := gjson.Get(body, "value")
		if !types.Exists() || !value.Exists() {
			return nil, fmt.Errorf("%w: type_patch needs types and value: %s", ErrInvalidDirective, match)
		}

		var text string
		if value.IsArray() {
			lines := make([]string, 0, len(value.Array()))
			for _, line := range value.Array() {
				lines = append(lines, line.String())
			}
			text = strings.Join(lines, "\n")
		} else {
			text = value.String()
		}

		replacements[key] = ""
		for _, t := range strings.Split(strings.ReplaceAll(types.String(), " ", ""), "|") {
			if registry.Variant(t) == variant {
				replacements[key] = text
				break
			}
		}
	}
	return replacements, nil
}

// envPatches maps every $env_patch{...} directive to its value when the
// toolkit version satisfies the qualifier, or to an empty string.
func envPatches(template string, toolkit *semver.Version) (map[string]string, error) {
	replacements := map[string]string{}
	for _, match := range envPatchPattern.FindAllString(template, -1) {
		body, err := directiveBody(match, "$env_patch")
		if err != nil {
			return nil, err
		}

		ok, err := matchVersion(toolkit, gjson.Get(body, "version").String())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", match, err)
		}
		if ok {
			replacements[match] = gjson.Get(body, "value").String()
		} else {
			replacements[match] = ""
		}
	}
	return replacements, nil
}

func matchVersion(current *semver.Version, qualified string) (bool, error) {
	qualified = strings.TrimSpace(qualified)
	for _, q := range qualifiers {
		if !strings.HasPrefix(qualified, q) {
			continue
		}
		want, err := semver.NewVersion(strings.TrimSpace(strings.TrimPrefix(qualified, q)))
		if err != nil {
			return false, fmt.Errorf("invalid version in qualifier %q: %w", qualified, err)
		}

		cmp := current.Compare(want)
		switch q {
		case "==":
			return cmp == 0, nil
		case "!=":
			return cmp != 0, nil
		case ">=":
			return cmp >= 0, nil
		case "<=":
			return cmp <= 0, nil
		case ">":
			return cmp > 0, nil
		default:
			return cmp < 0, nil
		}
	}
	return false, fmt.Errorf("%w: %q, available qualifiers %v", ErrInvalidQualifier, qualified, qualifiers)
}

// Asset is one recolored icon file referenced by a $url{...} directive
type Asset struct {
	Icon   string
	ID     string
	Rotate string
}

// FileName is <icon>_<id>_<rotate>.svg
func (a Asset) FileName() string {
	return strings.TrimSuffix(a.Icon, ".svg") + "_" + a.ID + "_" + a.Rotate + ".svg"
}

// ColorKey is the placeholder key of the asset's role
func (a Asset) ColorKey() string {
	return PlaceholderKey(a.ID)
}

// urls returns the distinct assets in order of first appearance together
// with the directive text of each occurrence.
func urls(template string) ([]Asset, map[string]Asset, error) {
	var assets []Asset
	seen := map[Asset]bool{}
	directives := map[string]Asset{}

	for _, match := range urlPattern.FindAllString(template, -1) {
		if _, ok := directives[match]; ok {
			continue
		}
		body, err := directiveBody(match, "$url")
		if err != nil {
			return nil, nil, err
		}

		icon := gjson.Get(body, "icon").String()
		id := gjson.Get(body, "id").String()
		if icon == "" || id == "" {
			return nil, nil, fmt.Errorf("%w: url needs icon and id: %s", ErrInvalidDirective, match)
		}
		rotate := "0"
		if r := gjson.Get(body, "rotate"); r.Exists() {
			rotate = r.String()
		}

		asset := Asset{Icon: icon, ID: id, Rotate: rotate}
		directives[match] = asset
		if !seen[asset] {
			seen[asset] = true
			assets = append(assets, asset)
		}
	}
	return assets, directives, nil
}
