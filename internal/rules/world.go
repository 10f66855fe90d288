package rules

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/chronicler/internal/domain/world"
	"github.com/KirkDiggler/chronicler/internal/effects"
	"github.com/KirkDiggler/chronicler/internal/intents"
)

func (e *engine) resolveChangeLocation(w *world.GameWorld, i intents.ChangeLocation) effects.Resolution {
	if strings.TrimSpace(i.NewLocation) == "" {
		return effects.Reject("Invalid location: a destination is required.")
	}
	if world.SameName(w.CurrentLocation, i.NewLocation) {
		return effects.Reject("You are already at %s.", w.CurrentLocation)
	}
	destination := i.NewLocation
	if l, ok := w.Locations.Find(i.NewLocation); ok {
		destination = l.Name
	}
	return effects.NewBuilder("You travel from %s to %s.", w.CurrentLocation, destination).
		Add(effects.LocationChanged{PreviousLocation: w.CurrentLocation, NewLocation: destination}).
		Build()
}

func (e *engine) resolveCreateNPC(w *world.GameWorld, i intents.CreateNPC) effects.Resolution {
	if strings.TrimSpace(i.Name) == "" {
		return effects.Reject("Invalid NPC: a name is required.")
	}
	if existing, dup := w.NPCs.Find(i.Name); dup {
		return effects.Reject("DUPLICATE NPC ERROR: An NPC named '%s' already exists (disposition: %s). Use 'update_npc' instead to modify their disposition, add information, or change their description. Do NOT call create_npc again for this character.",
			existing.Name, existing.Disposition)
	}

	disposition := world.Neutral
	if i.Disposition != "" {
		d, ok := world.ParseDisposition(i.Disposition)
		if !ok {
			return effects.Reject("Invalid disposition: '%s'. Use hostile, unfriendly, neutral, friendly or helpful.", i.Disposition)
		}
		disposition = d
	}

	b := effects.NewBuilder("NPC %s (%s)", i.Name, disposition)
	if i.Occupation != "" {
		b.Append(" (%s)", i.Occupation)
	}
	if i.Location != "" {
		b.Append(" at %s", i.Location)
	}
	return b.Append(" enters the world").
		Add(effects.NPCCreated{
			ID:               e.uuidGenerator.New(),
			Name:             i.Name,
			Description:      i.Description,
			Personality:      i.Personality,
			Occupation:       i.Occupation,
			Disposition:      disposition,
			Location:         i.Location,
			KnownInformation: append([]string(nil), i.KnownInformation...),
		}).
		Build()
}

func (e *engine) resolveUpdateNPC(w *world.GameWorld, i intents.UpdateNPC) effects.Resolution {
	npc, ok := w.NPCs.Find(i.NPCName)
	if !ok {
		return effects.Reject("NPC '%s' not found in the world", i.NPCName)
	}
	if i.Disposition != "" {
		if _, valid := world.ParseDisposition(i.Disposition); !valid {
			return effects.Reject("Invalid disposition: '%s'. Use hostile, unfriendly, neutral, friendly or helpful.", i.Disposition)
		}
	}

	var changes []string
	if i.Disposition != "" {
		changes = append(changes, "disposition changed")
	}
	if len(i.AddInformation) > 0 {
		changes = append(changes, "new information learned")
	}
	if i.NewDescription != "" {
		changes = append(changes, "description updated")
	}
	if i.NewPersonality != "" {
		changes = append(changes, "personality updated")
	}
	summary := "no changes"
	if len(changes) > 0 {
		summary = strings.Join(changes, ", ")
	}

	b := effects.NewBuilder("NPC %s updated: %s", npc.Name, summary).
		Add(effects.NPCUpdated{NPCName: npc.Name, Changes: summary})

	// NPCUpdated only announces the change; the fields that have a mutating
	// effect travel as assertions.
	if d, _ := world.ParseDisposition(i.Disposition); d != "" && d != npc.Disposition {
		b.Add(effects.StateAsserted{
			EntityName: npc.Name,
			StateType:  world.StateDisposition,
			OldValue:   string(npc.Disposition),
			NewValue:   string(d),
			Reason:     "NPC updated",
		})
	}
	for _, info := range i.AddInformation {
		b.Add(effects.StateAsserted{
			EntityName: npc.Name,
			StateType:  world.StateKnowledge,
			NewValue:   info,
			Reason:     "NPC updated",
		})
	}
	return b.Build()
}

func (e *engine) resolveMoveNPC(w *world.GameWorld, i intents.MoveNPC) effects.Resolution {
	npc, ok := w.NPCs.Find(i.NPCName)
	if !ok {
		return effects.Reject("NPC '%s' not found in the world", i.NPCName)
	}
	if strings.TrimSpace(i.Destination) == "" {
		return effects.Reject("Invalid destination for %s.", npc.Name)
	}

	b := effects.NewBuilder("NPC %s moves to %s", npc.Name, i.Destination)
	if i.Reason != "" {
		b.Append(" (%s)", i.Reason)
	}
	return b.Add(effects.NPCMoved{
		NPCName:      npc.Name,
		FromLocation: w.LocationName(npc.LocationID),
		ToLocation:   i.Destination,
	}).Build()
}

func (e *engine) resolveRemoveNPC(w *world.GameWorld, i intents.RemoveNPC) effects.Resolution {
	npc, ok := w.NPCs.Find(i.NPCName)
	if !ok {
		return effects.Reject("NPC '%s' not found in the world", i.NPCName)
	}
	permanence := "temporarily"
	if i.Permanent {
		permanence = "permanently"
	}
	return effects.NewBuilder("NPC %s %s removed: %s", npc.Name, permanence, i.Reason).
		Add(effects.NPCRemoved{NPCName: npc.Name, Reason: i.Reason}).
		Build()
}

func (e *engine) resolveCreateLocation(w *world.GameWorld, i intents.CreateLocation) effects.Resolution {
	if strings.TrimSpace(i.Name) == "" {
		return effects.Reject("Invalid location: a name is required.")
	}
	if existing, dup := w.Locations.Find(i.Name); dup {
		return effects.Reject("DUPLICATE LOCATION ERROR: A location named '%s' already exists (%s). Use 'update_location' instead to change its description, items or NPCs.",
			existing.Name, existing.Type)
	}

	locationType := world.ParseLocationType(i.LocationType)
	b := effects.NewBuilder("New location created: %s (%s)", i.Name, locationType)
	if i.ParentLocation != "" {
		b.Append(" in %s", i.ParentLocation)
	}
	if len(i.Items) > 0 {
		b.Append(" with items: %s", strings.Join(i.Items, ", "))
	}
	if len(i.NPCsPresent) > 0 {
		b.Append(" featuring NPCs: %s", strings.Join(i.NPCsPresent, ", "))
	}
	if i.Description != "" {
		b.Append(" - %s", i.Description)
	}
	return b.Add(effects.LocationCreated{
		ID:             e.uuidGenerator.New(),
		Name:           i.Name,
		LocationType:   locationType,
		Description:    i.Description,
		ParentLocation: i.ParentLocation,
		Items:          append([]string(nil), i.Items...),
		NPCsPresent:    append([]string(nil), i.NPCsPresent...),
	}).Build()
}

func (e *engine) resolveConnectLocations(w *world.GameWorld, i intents.ConnectLocations) effects.Resolution {
	from, ok := w.Locations.Find(i.FromLocation)
	if !ok {
		return effects.Reject("Location '%s' not found in the world", i.FromLocation)
	}
	to, ok := w.Locations.Find(i.ToLocation)
	if !ok {
		return effects.Reject("Location '%s' not found in the world", i.ToLocation)
	}
	if from.ID == to.ID {
		return effects.Reject("Invalid connection: %s cannot connect to itself.", from.Name)
	}
	minutes := 0
	if i.TravelTimeMinutes != nil {
		if *i.TravelTimeMinutes < 0 {
			return effects.Reject("Invalid travel time: %d minutes.", *i.TravelTimeMinutes)
		}
		minutes = *i.TravelTimeMinutes
	}

	b := effects.NewBuilder("Locations connected: %s to %s", from.Name, to.Name)
	if i.Direction != "" {
		b.Append(" (%s direction)", i.Direction)
	}
	if i.TravelTimeMinutes != nil {
		b.Append(", %d minutes travel time", minutes)
	}
	b.Add(effects.LocationsConnected{From: from.Name, To: to.Name, Direction: i.Direction, TravelTimeMinutes: minutes})

	if i.Bidirectional {
		b.Append(" (bidirectional)")
		b.Add(effects.LocationsConnected{From: to.Name, To: from.Name, Direction: opposite(i.Direction), TravelTimeMinutes: minutes})
	} else {
		b.Append(" (one-way)")
	}
	return b.Build()
}

var opposites = map[string]string{
	"north": "south", "south": "north",
	"east": "west", "west": "east",
	"northeast": "southwest", "southwest": "northeast",
	"northwest": "southeast", "southeast": "northwest",
	"up": "down", "down": "up",
	"in": "out", "out": "in",
}

// opposite flips a compass direction. Anything else is kept as is.
func opposite(direction string) string {
	if o, ok := opposites[strings.ToLower(strings.TrimSpace(direction))]; ok {
		return o
	}
	return direction
}

func (e *engine) resolveUpdateLocation(w *world.GameWorld, i intents.UpdateLocation) effects.Resolution {
	name := i.LocationName
	if l, ok := w.Locations.Find(i.LocationName); ok {
		name = l.Name
	} else if !world.SameName(w.CurrentLocation, i.LocationName) {
		return effects.Reject("Location '%s' not found in the world", i.LocationName)
	}

	var changes []string
	if i.NewDescription != "" {
		changes = append(changes, "description updated")
	}
	if len(i.AddItems) > 0 {
		changes = append(changes, "added items: "+strings.Join(i.AddItems, ", "))
	}
	if len(i.RemoveItems) > 0 {
		changes = append(changes, "removed items: "+strings.Join(i.RemoveItems, ", "))
	}
	if len(i.AddNPCs) > 0 {
		changes = append(changes, "NPCs arrived: "+strings.Join(i.AddNPCs, ", "))
	}
	if len(i.RemoveNPCs) > 0 {
		changes = append(changes, "NPCs left: "+strings.Join(i.RemoveNPCs, ", "))
	}
	summary := "no changes"
	if len(changes) > 0 {
		summary = strings.Join(changes, "; ")
	}

	return effects.NewBuilder("Location %s updated: %s", name, summary).
		Add(effects.LocationUpdated{LocationName: name, Changes: summary}).
		Build()
}

func (e *engine) resolveAssertState(w *world.GameWorld, i intents.AssertState) effects.Resolution {
	stateType, valid := world.ParseStateType(string(i.StateType))
	if !valid {
		return effects.Reject("Invalid state type: '%s'. Use disposition, location, status, knowledge or relationship.", i.StateType)
	}
	if stateType == world.StateDisposition {
		if _, ok := world.ParseDisposition(i.NewValue); !ok {
			return effects.Reject("Invalid disposition: '%s'. Use hostile, unfriendly, neutral, friendly or helpful.", i.NewValue)
		}
	}

	entity := i.EntityName
	old := ""
	if npc, ok := w.NPCs.Find(i.EntityName); ok {
		entity = npc.Name
		switch stateType {
		case world.StateDisposition:
			old = string(npc.Disposition)
		case world.StateLocation:
			old = w.LocationName(npc.LocationID)
		case world.StateStatus:
			old = npc.Status
		}
	}

	var narrative string
	switch stateType {
	case world.StateDisposition:
		narrative = fmt.Sprintf("%s's disposition is now %s (reason: %s)", entity, i.NewValue, i.Reason)
	case world.StateLocation:
		narrative = fmt.Sprintf("%s is now at %s (reason: %s)", entity, i.NewValue, i.Reason)
	case world.StateStatus:
		narrative = fmt.Sprintf("%s's status is now %s (reason: %s)", entity, i.NewValue, i.Reason)
	case world.StateKnowledge:
		narrative = fmt.Sprintf("%s now knows: %s (reason: %s)", entity, i.NewValue, i.Reason)
	case world.StateRelationship:
		if i.TargetEntity != "" {
			narrative = fmt.Sprintf("%s's relationship with %s is now %s (reason: %s)", entity, i.TargetEntity, i.NewValue, i.Reason)
		} else {
			narrative = fmt.Sprintf("%s's relationship status: %s (reason: %s)", entity, i.NewValue, i.Reason)
		}
	}

	return effects.NewBuilder("%s", narrative).
		Add(effects.StateAsserted{
			EntityName:   entity,
			StateType:    stateType,
			OldValue:     old,
			NewValue:     i.NewValue,
			Reason:       i.Reason,
			TargetEntity: i.TargetEntity,
		}).
		Build()
}

func (e *engine) resolveShareKnowledge(i intents.ShareKnowledge) effects.Resolution {
	if strings.TrimSpace(i.Content) == "" {
		return effects.Reject("Invalid knowledge: nothing to share.")
	}
	b := effects.NewBuilder("%s now knows: %q (from: %s, %s)", i.KnowingEntity, i.Content, i.Source, i.Verification)
	if i.Context != "" {
		b.Append(" [%s]", i.Context)
	}
	return b.Add(effects.KnowledgeShared{
		KnowingEntity: i.KnowingEntity,
		Content:       i.Content,
		Source:        i.Source,
		Verification:  i.Verification,
		Context:       i.Context,
	}).Build()
}

// triggerText describes when a scheduled event fires
func triggerText(i intents.ScheduleEvent) string {
	switch {
	case i.DailyHour != nil && i.DailyMinute != nil:
		if i.Repeating {
			return fmt.Sprintf("daily at %02d:%02d", *i.DailyHour, *i.DailyMinute)
		}
		return fmt.Sprintf("at %02d:%02d", *i.DailyHour, *i.DailyMinute)

	case i.Day != nil && i.Month != nil && i.Year != nil:
		if i.Hour != nil {
			return fmt.Sprintf("on %d/%d/%d at %02d:00", *i.Month, *i.Day, *i.Year, *i.Hour)
		}
		return fmt.Sprintf("on %d/%d/%d", *i.Month, *i.Day, *i.Year)

	case i.Minutes != nil || i.Hours != nil:
		total := 0
		if i.Minutes != nil {
			total += *i.Minutes
		}
		if i.Hours != nil {
			total += *i.Hours * 60
		}
		switch {
		case total < 60:
			return fmt.Sprintf("in %d minutes", total)
		case total < world.MinutesPerDay:
			if total%60 > 0 {
				return fmt.Sprintf("in %d hours and %d minutes", total/60, total%60)
			}
			return fmt.Sprintf("in %d hours", total/60)
		default:
			return fmt.Sprintf("in %d days", total/world.MinutesPerDay)
		}
	}
	return "at an unspecified time"
}

func (e *engine) resolveScheduleEvent(i intents.ScheduleEvent) effects.Resolution {
	if strings.TrimSpace(i.Description) == "" {
		return effects.Reject("Invalid event: a description is required.")
	}
	if (i.Minutes != nil && *i.Minutes < 0) || (i.Hours != nil && *i.Hours < 0) {
		return effects.Reject("Invalid event timing: events cannot be scheduled in the past.")
	}

	trigger := triggerText(i)
	b := effects.NewBuilder("Scheduled: %q %s", i.Description, trigger)
	if i.Location != "" {
		b.Append(" at %s", i.Location)
	}
	switch i.Visibility {
	case "private", "secret":
		b.Append(" (private)")
	case "hinted":
		b.Append(" (hinted)")
	}

	visibility := i.Visibility
	if visibility == "" {
		visibility = "public"
	}
	return b.Add(effects.EventScheduled{
		Description:        i.Description,
		TriggerDescription: trigger,
		Location:           i.Location,
		Visibility:         visibility,
	}).Build()
}

func (e *engine) resolveCancelEvent(i intents.CancelEvent) effects.Resolution {
	if strings.TrimSpace(i.EventDescription) == "" {
		return effects.Reject("Invalid event: say which event to cancel.")
	}
	return effects.NewBuilder("Event cancelled: %q - %s", i.EventDescription, i.Reason).
		Add(effects.EventCancelled{Description: i.EventDescription, Reason: i.Reason}).
		Build()
}
