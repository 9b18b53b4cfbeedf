package domain

// TakeDamage наносит урон. Возвращает true, если актор погиб от этого удара.
// HP всегда остается в [0, MaxHP]; отрицательный урон лечит.
func (a *Actor) TakeDamage(amount int) bool {
	if a.HP <= 0 {
		return false
	}
	if amount < 0 {
		a.Heal(-amount)
		return false
	}

	a.HP -= amount

	if a.HP <= 0 {
		a.HP = 0
		return true
	}
	return false
}

// Heal лечит актора
func (a *Actor) Heal(amount int) {
	if a.HP <= 0 {
		return // Не лечим трупы! Нет некромантии!
	}
	a.HP += amount
	if a.HP > a.MaxHP {
		a.HP = a.MaxHP
	}
}

// TickCooldowns уменьшает перезарядку всех умений на 1.
func (a *Actor) TickCooldowns() {
	for i := range a.ActiveSkills {
		if a.ActiveSkills[i].CurrentCooldown > 0 {
			a.ActiveSkills[i].CurrentCooldown--
		}
	}
}

// TickStatuses уменьшает длительность статусов на 1 и убирает истекшие.
// Возвращает истекшие записи в исходном порядке.
func (a *Actor) TickStatuses() []StatusEffect {
	var expired []StatusEffect
	kept := a.StatusEffects[:0]
	for _, s := range a.StatusEffects {
		s.Duration--
		if s.Duration <= 0 {
			expired = append(expired, s)
			continue
		}
		kept = append(kept, s)
	}
	a.StatusEffects = kept
	return expired
}
