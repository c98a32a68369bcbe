package planner

// TagsFromForm derives context tags from a goal's onboarding answers. The
// payload is heterogeneous per category, so every read is optional; unknown
// or missing keys simply contribute nothing. "home" is assumed unless the
// answers point at a gym.
func TagsFromForm(form map[string]interface{}) []string {
	if form == nil {
		return nil
	}

	var tags []string
	add := func(tag string) {
		for _, t := range tags {
			if t == tag {
				return
			}
		}
		tags = append(tags, tag)
	}

	if slot, ok := form["planTime"].(string); ok && slot != "" {
		add(slot)
	}

	equipment, _ := form["equipment"].(string)
	location, _ := form["location"].(string)
	switch equipment {
	case "none":
		add("sin_equipo")
	case "home":
		add("home")
	case "gym":
		add("gimnasio")
	}
	switch location {
	case "home":
		add("home")
	case "gym":
		add("gimnasio")
	}

	if truthy(form["cocina"]) || truthy(form["kitchen"]) {
		add("cocina")
	}
	if truthy(form["accounts"]) {
		add("email")
	}

	gym := false
	for _, t := range tags {
		if t == "gimnasio" {
			gym = true
		}
	}
	if !gym {
		add("home")
	}
	return tags
}

// TagsOverlap reports template eligibility: templates without tags are
// universally eligible, otherwise at least one tag must match.
func TagsOverlap(templateTags, userTags []string) bool {
	if len(templateTags) == 0 || len(userTags) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(userTags))
	for _, t := range userTags {
		set[t] = struct{}{}
	}
	for _, t := range templateTags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x != "" && x != "false" && x != "0"
	case float64:
		return x != 0
	case int:
		return x != 0
	default:
		return false
	}
}
